package cli

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vvka-141/dirtally/internal/config"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// noExtension is the per-extension key for files without one.
const noExtension = "(none)"

// Report is what count, list and scan print.
type Report struct {
	ID          string                    `json:"id" yaml:"id"`
	Command     string                    `json:"command" yaml:"command"`
	Root        string                    `json:"root" yaml:"root"`
	Recursive   bool                      `json:"recursive" yaml:"recursive"`
	Budget      *int                      `json:"budget,omitempty" yaml:"budget,omitempty"`
	GeneratedAt time.Time                 `json:"generated_at" yaml:"generated_at"`
	Count       int                       `json:"count" yaml:"count"`
	TotalBytes  int64                     `json:"total_bytes" yaml:"total_bytes"`
	Extensions  map[string]int            `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Files       []dirtally.FileDescriptor `json:"files,omitempty" yaml:"files,omitempty"`
}

func newReport(command, root string, cfg *config.ProjectConfig) (*Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, dirtally.NewIOError("abs", root, err)
	}

	budget := cfg.MaxCount
	return &Report{
		ID:          uuid.NewString(),
		Command:     command,
		Root:        absRoot,
		Recursive:   cfg.Recursive,
		Budget:      &budget,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (r *Report) setCount(n int) {
	r.Count = n
}

// setFiles records the listing and its aggregates.
func (r *Report) setFiles(files []dirtally.FileDescriptor) {
	r.Files = files
	r.Count = len(files)
	r.TotalBytes = lo.SumBy(files, func(f dirtally.FileDescriptor) int64 {
		return f.SizeBytes
	})
	r.Extensions = lo.CountValuesBy(files, func(f dirtally.FileDescriptor) string {
		if f.Extension == "" {
			return noExtension
		}
		return f.Extension
	})
}
