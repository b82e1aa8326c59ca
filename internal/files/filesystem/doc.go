// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the narrow set of operations the inventory engine
// needs (list a directory, stat an entry, resolve a canonical path) so the
// traversal can run against the OS, an io/fs.FS, or an in-memory tree.
//
// Key interfaces:
//   - FileSystemProvider: Directory listing, metadata and path resolution
//   - DirEntry / FileInfo: Aliases of the io/fs types
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - FSProvider: Wraps any io/fs.FS (embed.FS, fstest.MapFS, os.DirFS)
//   - MemoryFileSystem: In-memory tree with fault injection for tests
package filesystem
