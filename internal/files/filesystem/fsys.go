package filesystem

import (
	"io/fs"
	"path"
	"strings"
)

// FSProvider implements FileSystemProvider on top of an io/fs.FS such as
// embed.FS, os.DirFS or fstest.MapFS. io/fs has no symlink resolution, so
// RealPath is the cleaned path.
//
// Paths returned by Abs and RealPath start with "/" and are rooted at the
// top of the fs.FS, not at the provider root, so they can be passed back in.
type FSProvider struct {
	fsys fs.FS
	root string // root path within the fs.FS (always uses forward slashes)
}

// NewFSProvider creates a new filesystem provider wrapping an fs.FS.
// The root parameter specifies the subdirectory within fsys to treat as the root.
// All paths are normalized to use forward slashes for consistency with io/fs.
func NewFSProvider(fsys fs.FS, root string) *FSProvider {
	return &FSProvider{
		fsys: fsys,
		root: normalizeFSPath(root),
	}
}

// normalizeFSPath turns any slash style into a valid io/fs path.
func normalizeFSPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return path.Clean(p)
}

// resolve maps a caller path onto a path inside the fs.FS.
func (p *FSProvider) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if strings.HasPrefix(name, "/") {
		return normalizeFSPath(name)
	}
	if name == "" || name == "." {
		return p.root
	}
	return normalizeFSPath(path.Join(p.root, name))
}

func (p *FSProvider) ReadDir(name string) ([]DirEntry, error) {
	return fs.ReadDir(p.fsys, p.resolve(name))
}

func (p *FSProvider) Stat(name string) (FileInfo, error) {
	return fs.Stat(p.fsys, p.resolve(name))
}

func (p *FSProvider) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(p.fsys, p.resolve(name))
}

func (p *FSProvider) Abs(name string) (string, error) {
	return rooted(p.resolve(name)), nil
}

func (p *FSProvider) RealPath(name string) (string, error) {
	resolved := p.resolve(name)
	if _, err := fs.Stat(p.fsys, resolved); err != nil {
		return "", err
	}
	return rooted(resolved), nil
}

func rooted(p string) string {
	if p == "." {
		return "/"
	}
	return "/" + p
}

func (p *FSProvider) Join(elem ...string) string {
	return path.Join(elem...)
}
