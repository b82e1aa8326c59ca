package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

// maxSymlinkHops mirrors the ELOOP limit of common kernels.
const maxSymlinkHops = 40

// Errors match what the kernel reports so callers can treat both providers alike.
var (
	errNotDirectory error = syscall.ENOTDIR
	errTooManyLinks error = syscall.ELOOP
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is one entry of the in-memory tree
type memoryNode struct {
	info    memoryFileInfo
	content []byte
	target  string // symlink target, only for ModeSymlink
	statErr error  // injected metadata failure
	listErr error  // injected listing failure, only for directories
}

// memoryDirEntry implements fs.DirEntry with lstat semantics, like os.ReadDir
type memoryDirEntry struct {
	fullPath string
	node     *memoryNode
}

func (e *memoryDirEntry) Name() string      { return e.node.info.name }
func (e *memoryDirEntry) IsDir() bool       { return e.node.info.mode.IsDir() }
func (e *memoryDirEntry) Type() fs.FileMode { return e.node.info.mode.Type() }

func (e *memoryDirEntry) Info() (fs.FileInfo, error) {
	if e.node.statErr != nil {
		return nil, &fs.PathError{Op: "lstat", Path: e.fullPath, Err: e.node.statErr}
	}
	info := e.node.info
	return &info, nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It supports directories, regular files, symlinks and special entries,
// plus injected stat and listing failures. Not safe for concurrent
// mutation; concurrent reads are fine.
type MemoryFileSystem struct {
	nodes map[string]*memoryNode // map of absolute path -> node
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	// Normalize root to forward slashes (virtual filesystem convention)
	root = filepath.ToSlash(root)
	if !path.IsAbs(root) {
		root = "/" + root
	}
	root = path.Clean(root)

	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memoryNode),
		root:  root,
	}

	mfs.nodes[root] = newDirNode(path.Base(root))
	mfs.ensureDirectoriesExist(root)

	return mfs
}

func newDirNode(name string) *memoryNode {
	return &memoryNode{
		info: memoryFileInfo{
			name:    name,
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// absPath calculates the absolute path within the virtual filesystem
func (mfs *MemoryFileSystem) absPath(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.absPath(filePath)
	contentBytes := []byte(content)

	mfs.nodes[absPath] = &memoryNode{
		info: memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
		content: contentBytes,
	}

	// Also add parent directories
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory (and its parents)
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.absPath(dirPath)
	if _, exists := mfs.nodes[absPath]; !exists {
		mfs.nodes[absPath] = newDirNode(path.Base(absPath))
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSymlink adds a symlink at linkPath pointing at target. Relative
// targets are resolved against the link's directory, as the OS does.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	absPath := mfs.absPath(linkPath)
	mfs.nodes[absPath] = &memoryNode{
		info: memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(target)),
			mode:    0777 | fs.ModeSymlink,
			modTime: time.Now(),
		},
		target: filepath.ToSlash(target),
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSpecial adds an entry that is neither a file nor a directory,
// such as a socket (fs.ModeSocket) or a named pipe (fs.ModeNamedPipe).
func (mfs *MemoryFileSystem) AddSpecial(specialPath string, mode fs.FileMode) {
	absPath := mfs.absPath(specialPath)
	mfs.nodes[absPath] = &memoryNode{
		info: memoryFileInfo{
			name:    path.Base(absPath),
			mode:    mode.Type() | 0600,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailStat makes metadata reads of the entry at p fail with err.
func (mfs *MemoryFileSystem) FailStat(p string, err error) {
	if node, ok := mfs.nodes[mfs.absPath(p)]; ok {
		node.statErr = err
	}
}

// FailReadDir makes listing the directory at p fail with err.
func (mfs *MemoryFileSystem) FailReadDir(p string, err error) {
	if node, ok := mfs.nodes[mfs.absPath(p)]; ok {
		node.listErr = err
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}

	// Check if directory entry already exists
	if _, exists := mfs.nodes[dir]; exists {
		return
	}

	mfs.nodes[dir] = newDirNode(path.Base(dir))

	// Recursively create parent directories
	mfs.ensureDirectoriesExist(dir)
}

// resolve walks p component by component, following symlinks in every
// component except possibly the last.
func (mfs *MemoryFileSystem) resolve(p string, followLast bool, hops int) (string, *memoryNode, error) {
	if hops > maxSymlinkHops {
		return "", nil, errTooManyLinks
	}

	p = mfs.absPath(p)
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")

	cur := "/"
	for i, part := range parts {
		if part == "" {
			continue
		}
		next := path.Join(cur, part)
		node, ok := mfs.nodes[next]
		if !ok {
			return "", nil, fs.ErrNotExist
		}

		last := i == len(parts)-1
		switch {
		case node.info.mode&fs.ModeSymlink != 0 && (!last || followLast):
			target := node.target
			if !path.IsAbs(target) {
				target = path.Join(cur, target)
			}
			resolved, _, err := mfs.resolve(target, true, hops+1)
			if err != nil {
				return "", nil, err
			}
			next = resolved
		case !last && !node.info.mode.IsDir():
			return "", nil, errNotDirectory
		}
		cur = next
	}

	node, ok := mfs.nodes[cur]
	if !ok {
		return "", nil, fs.ErrNotExist
	}
	return cur, node, nil
}

// ReadDir implements FileSystemProvider.ReadDir.
// Entries are sorted by name, matching os.ReadDir.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]DirEntry, error) {
	resolved, node, err := mfs.resolve(dirPath, true, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: err}
	}
	if !node.info.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: errNotDirectory}
	}
	if node.listErr != nil {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: node.listErr}
	}

	var names []string
	for p := range mfs.nodes {
		if p != resolved && path.Dir(p) == resolved {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)

	listed := mfs.absPath(dirPath)
	entries := make([]DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &memoryDirEntry{
			fullPath: path.Join(listed, name),
			node:     mfs.nodes[path.Join(resolved, name)],
		})
	}
	return entries, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	_, node, err := mfs.resolve(statPath, true, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: err}
	}
	if node.statErr != nil {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: node.statErr}
	}

	info := node.info
	return &info, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	_, node, err := mfs.resolve(filePath, true, 0)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, err)
	}

	if !node.info.mode.IsRegular() {
		return nil, fmt.Errorf("path is not a regular file: %s", filePath)
	}

	return node.content, nil
}

// Abs implements FileSystemProvider.Abs
func (mfs *MemoryFileSystem) Abs(p string) (string, error) {
	return mfs.absPath(p), nil
}

// RealPath implements FileSystemProvider.RealPath
func (mfs *MemoryFileSystem) RealPath(p string) (string, error) {
	resolved, _, err := mfs.resolve(p, true, 0)
	if err != nil {
		return "", &fs.PathError{Op: "realpath", Path: p, Err: err}
	}
	return resolved, nil
}

// Join implements FileSystemProvider.Join
func (mfs *MemoryFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}
