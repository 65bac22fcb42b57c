package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// frame is one snapshot to render.
type frame struct {
	Index    int
	Progress float64
	Path     string
}

// sweep returns n progress values evenly spaced over [0, 1], both ends included.
func sweep(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// parseProgressList parses a comma-separated list of progress values in [0, 1].
func parseProgressList(s string) ([]float64, error) {
	var out []float64
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("progress %q: %w", field, err)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("progress %v outside [0, 1]", p)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("no progress values given")
	}
	return out, nil
}

// plan names the output file of every progress value.
func plan(dir string, progress []float64) []frame {
	frames := make([]frame, len(progress))
	for i, p := range progress {
		frames[i] = frame{
			Index:    i,
			Progress: p,
			Path:     filepath.Join(dir, fmt.Sprintf("frame_%03d_p%.3f.png", i, p)),
		}
	}
	return frames
}
