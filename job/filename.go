package job

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FileMeta is the generator metadata carried by a benchmark file name.
type FileMeta struct {
	RDD  float64
	TF   float64
	Size int
	// Seq distinguishes several files with the same parameters; 0 if absent.
	Seq int
}

// FileName renders the benchmark naming scheme:
//
//	random_RDD=0.2_TF=0.6_#10.dat      (seq == 0)
//	random_RDD=0.2_TF=0.6_#10-3.dat    (seq == 3)
func FileName(m FileMeta) string {
	base := fmt.Sprintf("random_RDD=%s_TF=%s_#%d",
		strconv.FormatFloat(m.RDD, 'f', 1, 64),
		strconv.FormatFloat(m.TF, 'f', 1, 64),
		m.Size)
	if m.Seq > 0 {
		base += "-" + strconv.Itoa(m.Seq)
	}

	return base + ".dat"
}

// ParseFileName recovers FileMeta from a path produced by FileName.
// Only the base name is inspected.
//
// Errors: ErrBadFileName.
func ParseFileName(path string) (FileMeta, error) {
	var (
		m     FileMeta
		name  = filepath.Base(path)
		parts []string
		err   error
	)
	if !strings.HasSuffix(name, ".dat") {
		return m, fmt.Errorf("%q: %w", name, ErrBadFileName)
	}
	parts = strings.Split(strings.TrimSuffix(name, ".dat"), "_")
	if len(parts) != 4 || parts[0] != "random" ||
		!strings.HasPrefix(parts[1], "RDD=") || !strings.HasPrefix(parts[2], "TF=") ||
		!strings.HasPrefix(parts[3], "#") {
		return m, fmt.Errorf("%q: %w", name, ErrBadFileName)
	}
	if m.RDD, err = strconv.ParseFloat(strings.TrimPrefix(parts[1], "RDD="), 64); err != nil {
		return m, fmt.Errorf("%q: rdd: %w", name, ErrBadFileName)
	}
	if m.TF, err = strconv.ParseFloat(strings.TrimPrefix(parts[2], "TF="), 64); err != nil {
		return m, fmt.Errorf("%q: tf: %w", name, ErrBadFileName)
	}

	size, seq, found := strings.Cut(strings.TrimPrefix(parts[3], "#"), "-")
	if m.Size, err = strconv.Atoi(size); err != nil {
		return m, fmt.Errorf("%q: size: %w", name, ErrBadFileName)
	}
	if found {
		if m.Seq, err = strconv.Atoi(seq); err != nil {
			return m, fmt.Errorf("%q: seq: %w", name, ErrBadFileName)
		}
	}

	return m, nil
}
