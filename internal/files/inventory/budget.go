package inventory

// budget is the remaining allowance of a traversal. It is passed by value
// into every recursive call and the updated value is returned, so sibling
// and nested subtrees draw from one allowance without shared state.
type budget struct {
	remaining int
	counted   int
	unlimited bool
}

func newBudget(max int) budget {
	return budget{remaining: max}
}

func unlimitedBudget() budget {
	return budget{unlimited: true}
}

// take consumes one unit. ok is false once the allowance is spent; the
// returned budget is then meaningless.
func (b budget) take() (budget, bool) {
	if !b.unlimited {
		if b.remaining == 0 {
			return b, false
		}
		b.remaining--
	}
	b.counted++
	return b, true
}
