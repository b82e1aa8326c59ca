package inventory

import (
	"fmt"

	"github.com/vvka-141/dirtally/internal/files/filesystem"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// guard keeps a traversal finite: a depth cap always, and a set of
// canonical directory paths when symlinks are followed.
type guard struct {
	fsProvider filesystem.FileSystemProvider
	maxDepth   int
	visited    map[string]struct{} // nil when symlinks are not followed
}

func newGuard(fsProvider filesystem.FileSystemProvider, maxDepth int, followSymlinks bool) *guard {
	g := &guard{fsProvider: fsProvider, maxDepth: maxDepth}
	if followSymlinks {
		g.visited = make(map[string]struct{})
	}
	return g
}

// enter reports whether dir at depth should be descended into. A
// directory already seen through another path is skipped.
func (g *guard) enter(dir string, depth int) (bool, error) {
	if depth > g.maxDepth {
		return false, fmt.Errorf("%s is %d levels below the root (limit %d): %w", dir, depth, g.maxDepth, dirtally.ErrDepthExceeded)
	}
	if g.visited == nil {
		return true, nil
	}

	real, err := g.fsProvider.RealPath(dir)
	if err != nil {
		return false, dirtally.NewIOError("realpath", dir, err)
	}
	if _, seen := g.visited[real]; seen {
		return false, nil
	}
	g.visited[real] = struct{}{}
	return true, nil
}
