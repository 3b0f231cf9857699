package bench

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header lists the CSV columns in order.
var Header = []string{
	"run_id", "instance", "rdd", "tf", "size", "algo",
	"runtime_ms", "tardiness", "status", "expected", "matches",
}

// WriteCSV writes the header and one row per record. Unknown expected and
// matches values are left empty.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		var expected, matches string
		if r.Expected != nil {
			expected = strconv.FormatInt(*r.Expected, 10)
		}
		if r.Matches != nil {
			matches = strconv.FormatBool(*r.Matches)
		}
		row := []string{
			r.RunID,
			r.Instance,
			ftoa(r.RDD),
			ftoa(r.TF),
			strconv.Itoa(r.Size),
			r.Algo,
			ftoa(float64(r.Runtime.Microseconds()) / 1000.0),
			strconv.FormatInt(r.Tardiness, 10),
			r.Status,
			expected,
			matches,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile creates path (and its directory) and writes records to it.
func WriteCSVFile(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
