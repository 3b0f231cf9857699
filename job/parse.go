package job

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read parses an instance in the whitespace format: an integer n followed by
// 2n integers, read as (processing time, due date) pairs.
//
// Contract:
//   - any whitespace (spaces, tabs, newlines) separates tokens;
//   - n must be non-negative, every processing time positive;
//   - the stream must end after the 2n-th value.
//
// Errors: ErrMalformedInput, wrapped with the token position and cause.
// Read errors from r are returned as-is.
//
// Complexity: O(n) time and O(n) space.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var pos int // 0-based token position, for error messages
	next := func(what string) (int64, error) {
		if !sc.Scan() {
			if err := scanErr(sc, pos); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: token %d (%s): unexpected end of input", ErrMalformedInput, pos, what)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedInput, pos, what, sc.Text())
		}
		pos++

		return v, nil
	}

	n, err := next("n")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative job count %d", ErrMalformedInput, n)
	}

	var (
		jobs = make([]Job, 0, min(n, maxPrealloc))
		i    int64
		p, d int64
	)
	for i = 0; i < n; i++ {
		if p, err = next("p"); err != nil {
			return nil, err
		}
		if d, err = next("d"); err != nil {
			return nil, err
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: job %d: processing time %d must be positive", ErrMalformedInput, i, p)
		}
		jobs = append(jobs, Job{P: p, D: d})
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: token %d: trailing data %q after %d jobs", ErrMalformedInput, pos, sc.Text(), n)
	}
	if err = scanErr(sc, pos); err != nil {
		return nil, err
	}

	return &Instance{jobs: jobs}, nil
}

// maxPrealloc caps the capacity reserved from the declared job count; the
// slice grows past it only as pairs are actually read.
const maxPrealloc = 1 << 16

// scanErr reports a scanner failure. An over-long token is malformed input,
// other errors come from the reader and are returned as-is.
func scanErr(sc *bufio.Scanner, pos int) error {
	err := sc.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: token %d: %v", ErrMalformedInput, pos, err)
	}

	return err
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Write emits inst in the format accepted by Read: n on the first line,
// then one "p d" pair per line.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(inst.jobs)); err != nil {
		return err
	}
	for _, j := range inst.jobs {
		if _, err := fmt.Fprintf(bw, "%d %d\n", j.P, j.D); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes inst to path, creating or truncating it.
func WriteFile(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, inst); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
