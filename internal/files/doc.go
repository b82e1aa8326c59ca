// Package files groups the file-related sub-packages:
//   - filesystem: filesystem abstraction with OS, in-memory and io/fs providers
//   - inventory: the bounded enumerator, counter and builder
//   - filter: exclude globs applied during traversal
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/dirtally/internal/files/filesystem"
//	    "github.com/vvka-141/dirtally/internal/files/inventory"
//	)
//
//	inv, err := inventory.NewWithFS(filesystem.NewOSFileSystem(), opts)
//	n, err := inv.Count("./photos", 5000)
package files
