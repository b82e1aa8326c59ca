package filesystem

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func newTestFS() *FSProvider {
	return NewFSProvider(fstest.MapFS{
		"testdata/root.txt":          {Data: []byte("root\n")},
		"testdata/subdir/nested.txt": {Data: []byte("nested\n")},
		"testdata/subdir/.hidden":    {Data: nil},
		"other/outside.txt":          {Data: []byte("x")},
	}, "testdata")
}

func TestFSProvider_ReadDir(t *testing.T) {
	p := newTestFS()

	tests := []struct {
		name      string
		path      string
		want      []string
		expectErr bool
	}{
		{name: "root directory", path: ".", want: []string{"root.txt", "subdir"}},
		{name: "empty path (same as root)", path: "", want: []string{"root.txt", "subdir"}},
		{name: "subdirectory", path: "subdir", want: []string{".hidden", "nested.txt"}},
		{name: "backslashes (Windows-style)", path: "subdir\\", want: []string{".hidden", "nested.txt"}},
		{name: "rooted path", path: "/other", want: []string{"outside.txt"}},
		{name: "non-existent directory", path: "nonexistent", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := p.ReadDir(tt.path)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, entryNames(entries))
		})
	}
}

func TestFSProvider_AbsRoundTrip(t *testing.T) {
	p := newTestFS()

	abs, err := p.Abs(".")
	require.NoError(t, err)
	require.Equal(t, "/testdata", abs)

	// paths built from Abs must resolve to the same place
	entries, err := p.ReadDir(p.Join(abs, "subdir"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	info, err := p.Stat(p.Join(abs, "subdir", "nested.txt"))
	require.NoError(t, err)
	require.Equal(t, int64(7), info.Size())

	real, err := p.RealPath("subdir")
	require.NoError(t, err)
	require.Equal(t, "/testdata/subdir", real)

	_, err = p.RealPath("missing")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSProvider_ReadFile(t *testing.T) {
	p := newTestFS()

	content, err := p.ReadFile("subdir/nested.txt")
	require.NoError(t, err)
	require.Equal(t, "nested\n", string(content))

	_, err = p.ReadFile("nonexistent.txt")
	require.Error(t, err)
}

func TestFSProvider_RootProvider(t *testing.T) {
	p := NewFSProvider(fstest.MapFS{"a.txt": {Data: []byte("a")}}, "")

	abs, err := p.Abs("")
	require.NoError(t, err)
	require.Equal(t, "/", abs)

	info, err := p.Stat(p.Join(abs, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "a.txt", info.Name())
}
