package inventory

import (
	"fmt"

	"github.com/vvka-141/dirtally/internal/files/filter"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

type action int

const (
	actSkip action = iota
	actFile
	actDir
)

// walker is the state of one top-level traversal. It is created per call
// and never shared.
type walker struct {
	enum      *Enumerator
	guard     *guard
	exclude   *filter.Matcher
	recursive bool
	others    dirtally.OtherEntryPolicy
}

// admit applies exclusion, the per-entry failure policy and the
// other-entry policy, in that order. Excluded entries are never stat'ed.
func (w *walker) admit(e Entry) (action, error) {
	if w.exclude.Excluded(e.Rel) {
		return actSkip, nil
	}
	if e.Err != nil {
		return actSkip, dirtally.NewIOError("stat", e.Path, e.Err)
	}

	switch e.Kind {
	case dirtally.KindRegularFile:
		return actFile, nil
	case dirtally.KindDirectory:
		if !w.recursive {
			return actSkip, nil
		}
		return actDir, nil
	default:
		if w.others == dirtally.OtherFail {
			return actSkip, fmt.Errorf("%s: %w", e.Path, dirtally.ErrUnsupportedEntry)
		}
		return actSkip, nil
	}
}

// open runs the guard and lists dir. A nil slice with a nil error means
// the directory was already visited.
func (w *walker) open(dir, rel string, depth int) ([]Entry, error) {
	ok, err := w.guard.enter(dir, depth)
	if err != nil || !ok {
		return nil, err
	}
	return w.enum.Enumerate(dir, rel)
}
