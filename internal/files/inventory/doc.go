// Package inventory implements the bounded directory inventory engine.
//
// The engine has three parts built on one primitive:
//   - Enumerator: lists the immediate entries of one directory and
//     classifies each as a regular file, a directory, or something else.
//   - Counter: counts regular files, recursively if asked, against a
//     budget shared by the whole traversal. The budget is a value threaded
//     through every recursive call and returned alongside the count.
//   - Builder: collects a FileDescriptor per regular file into one flat
//     sequence in enumeration order, depth-first.
//
// Every operation is synchronous and all-or-nothing: an error anywhere in
// the tree aborts the call and no partial result is returned. The engine
// never logs; callers decide how to render failures.
//
// # Usage
//
//	inv, err := inventory.New(dirtally.ScanOptions{Recursive: true, MaxDepth: 64})
//	n, err := inv.Count("/photos", 5000)
//	files, err := inv.List("/photos")
//
// The boundary helpers CountFiles and ListFiles cover the common case.
package inventory
