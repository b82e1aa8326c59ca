package dirtally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/dirtally/pkg/dirtally"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{"a.txt", "a", "txt"},
		{".bashrc", ".bashrc", ""},
		{".config.yaml", ".config", "yaml"},
		{"notes.", "notes", ""},
		{"..hidden", ".", "hidden"},
		{"Makefile.in", "Makefile", "in"},
		{"photo.JPG", "photo", "JPG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := dirtally.SplitName(tt.name)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestNewFileDescriptor(t *testing.T) {
	d := dirtally.NewFileDescriptor("archive.tar.gz", "/data/archive.tar.gz", 0)

	assert.Equal(t, "archive.tar.gz", d.DisplayName)
	assert.Equal(t, "archive.tar", d.Stem)
	assert.Equal(t, "gz", d.Extension)
	assert.Equal(t, int64(0), d.SizeBytes)
	assert.Equal(t, "/data/archive.tar.gz", d.AbsolutePath)
}
