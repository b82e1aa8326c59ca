package inventory

import "github.com/vvka-141/dirtally/pkg/dirtally"

// build appends a descriptor for every regular file under dir to out.
// Subdirectory contents are spliced in at the subdirectory's position in
// the listing, so the result is depth-first pre-order. b caps the number
// of descriptors; pass an unlimited budget for no cap.
func (w *walker) build(dir, rel string, depth int, b budget, out []dirtally.FileDescriptor) ([]dirtally.FileDescriptor, budget, error) {
	entries, err := w.open(dir, rel, depth)
	if err != nil {
		return nil, b, err
	}

	for _, e := range entries {
		act, err := w.admit(e)
		if err != nil {
			return nil, b, err
		}

		switch act {
		case actFile:
			info, err := e.Info()
			if err != nil {
				return nil, b, dirtally.NewIOError("stat", e.Path, err)
			}
			var ok bool
			if b, ok = b.take(); !ok {
				return nil, b, dirtally.ErrBudgetExceeded
			}
			out = append(out, dirtally.NewFileDescriptor(e.Name, e.Path, info.Size()))
		case actDir:
			if out, b, err = w.build(e.Path, e.Rel, depth+1, b, out); err != nil {
				return nil, b, err
			}
		}
	}

	return out, b, nil
}
