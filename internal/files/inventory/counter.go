package inventory

import "github.com/vvka-141/dirtally/pkg/dirtally"

// count counts regular files under dir into b and returns the updated
// budget. b.counted on entry is the total already counted by earlier
// siblings and ancestors; on return it includes this subtree. The
// traversal stops at the first file that does not fit.
func (w *walker) count(dir, rel string, depth int, b budget) (budget, error) {
	entries, err := w.open(dir, rel, depth)
	if err != nil {
		return b, err
	}

	for _, e := range entries {
		act, err := w.admit(e)
		if err != nil {
			return b, err
		}

		switch act {
		case actFile:
			var ok bool
			if b, ok = b.take(); !ok {
				return b, dirtally.ErrBudgetExceeded
			}
		case actDir:
			if b, err = w.count(e.Path, e.Rel, depth+1, b); err != nil {
				return b, err
			}
		}
	}

	return b, nil
}
