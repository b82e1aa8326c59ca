package dirtally

import "strings"

// SplitName splits a file name into stem and extension at the last dot.
//
//	"archive.tar.gz" -> ("archive.tar", "gz")
//	"README"         -> ("README", "")
//	".bashrc"        -> (".bashrc", "")
//	"notes."         -> ("notes", "")
//
// A dot in the first position never starts an extension, so dotfiles keep
// their whole name as stem.
func SplitName(name string) (stem, extension string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// NewFileDescriptor builds the descriptor for a regular file.
func NewFileDescriptor(name, absolutePath string, size int64) FileDescriptor {
	stem, ext := SplitName(name)
	return FileDescriptor{
		DisplayName:  name,
		Stem:         stem,
		Extension:    ext,
		SizeBytes:    size,
		AbsolutePath: absolutePath,
	}
}
