package inventory

import (
	"errors"
	"io/fs"
	"path"
	"syscall"

	"github.com/vvka-141/dirtally/internal/files/filesystem"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// Entry is one classified child of a directory.
type Entry struct {
	Name string
	Path string // provider path used to reach the entry
	Rel  string // slash path relative to the scan root
	Kind dirtally.EntryKind

	// Err is a per-entry metadata failure found while classifying. The
	// enumerator does not act on it; callers decide.
	Err error

	dirEntry filesystem.DirEntry
	target   filesystem.FileInfo // stat of a followed symlink
}

// Info returns the entry's metadata. For followed symlinks this is the
// target's metadata.
func (e Entry) Info() (filesystem.FileInfo, error) {
	if e.target != nil {
		return e.target, nil
	}
	return e.dirEntry.Info()
}

// Enumerator lists and classifies the entries of a single directory.
type Enumerator struct {
	fsProvider     filesystem.FileSystemProvider
	followSymlinks bool
}

// NewEnumerator creates an enumerator over fsProvider.
// Panics if fsProvider is nil.
func NewEnumerator(fsProvider filesystem.FileSystemProvider, followSymlinks bool) *Enumerator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Enumerator{fsProvider: fsProvider, followSymlinks: followSymlinks}
}

// Enumerate returns the entries of dir in the order the provider lists
// them. rel is dir's slash path relative to the scan root ("" for the root).
// A listing failure is returned as an *dirtally.IOError; per-entry
// metadata failures are recorded on the entry instead.
func (e *Enumerator) Enumerate(dir, rel string) ([]Entry, error) {
	dirEntries, err := e.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, dirtally.NewIOError("readdir", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{
			Name:     de.Name(),
			Path:     e.fsProvider.Join(dir, de.Name()),
			Rel:      path.Join(rel, de.Name()),
			Kind:     dirtally.KindFromMode(de.Type()),
			dirEntry: de,
		}

		if e.followSymlinks && de.Type()&fs.ModeSymlink != 0 {
			e.classifyTarget(&entry)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// classifyTarget reclassifies a symlink by what it points at. Dangling
// and looping links stay KindOther.
func (e *Enumerator) classifyTarget(entry *Entry) {
	info, err := e.fsProvider.Stat(entry.Path)
	switch {
	case err == nil:
		entry.Kind = dirtally.KindFromMode(info.Mode())
		entry.target = info
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ELOOP):
		entry.Kind = dirtally.KindOther
	default:
		entry.Err = err
	}
}
