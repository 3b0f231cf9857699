package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsched/job"
	"github.com/katalvlaran/lvsched/memo"
	"github.com/katalvlaran/lvsched/tardiness"
)

// ErrBadPlan indicates a plan that cannot be run.
var ErrBadPlan = errors.New("bench: invalid plan")

// Plan is the YAML benchmark description.
type Plan struct {
	Workers    int           `yaml:"workers"`
	Timeout    time.Duration `yaml:"timeout"`
	Algorithms []AlgoSpec    `yaml:"algorithms"`
	Instances  []string      `yaml:"instances"`
	Generate   *GenerateSpec `yaml:"generate"`
	Answers    string        `yaml:"answers"`

	// dir resolves relative paths; set by ReadPlan to the plan's directory.
	dir string
}

// AlgoSpec is one algorithm column of the benchmark.
type AlgoSpec struct {
	Name    string  `yaml:"name"`     // label in output; defaults to Algo
	Algo    string  `yaml:"algo"`     // tardiness.ParseAlgo spelling
	Epsilon float64 `yaml:"epsilon"`  // approx only
	MaxJobs int     `yaml:"max_jobs"` // skip larger instances; 0 = no cap
	NoPrune bool    `yaml:"no_prune"`
	Memo    string  `yaml:"memo"` // memo.ParseBackend spelling
}

// GenerateSpec describes random instances built in memory.
type GenerateSpec struct {
	Sizes []int     `yaml:"sizes"`
	RDD   []float64 `yaml:"rdd"`
	TF    []float64 `yaml:"tf"`
	Count int       `yaml:"count"`
	Seed  int64     `yaml:"seed"`
}

// Case is one instance to benchmark.
type Case struct {
	Name string
	Meta job.FileMeta // zero when the name does not follow the benchmark scheme
	Inst *job.Instance
}

// ReadPlan loads and validates a plan file.
//
// Errors: ErrBadPlan (wrapped), I/O errors.
func ReadPlan(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ParsePlan(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)

	return p, nil
}

// ParsePlan decodes a plan; unknown keys are rejected. Relative paths are
// resolved against the working directory.
func ParsePlan(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Plan) normalize() error {
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	if p.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrBadPlan, p.Timeout)
	}
	if len(p.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrBadPlan)
	}
	seen := make(map[string]bool, len(p.Algorithms))
	for i := range p.Algorithms {
		a := &p.Algorithms[i]
		if _, err := a.Options(); err != nil {
			return fmt.Errorf("%w: algorithm %d: %v", ErrBadPlan, i, err)
		}
		if a.Name == "" {
			a.Name = a.Algo
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate algorithm name %q", ErrBadPlan, a.Name)
		}
		seen[a.Name] = true
	}
	if len(p.Instances) == 0 && p.Generate == nil {
		return fmt.Errorf("%w: neither instances nor generate given", ErrBadPlan)
	}
	if g := p.Generate; g != nil {
		if len(g.Sizes) == 0 {
			return fmt.Errorf("%w: generate without sizes", ErrBadPlan)
		}
		if g.Count <= 0 {
			g.Count = 1
		}
		if len(g.RDD) == 0 {
			g.RDD = []float64{0.6}
		}
		if len(g.TF) == 0 {
			g.TF = []float64{0.6}
		}
		for _, rdd := range g.RDD {
			if !(rdd > 0 && rdd <= 1) {
				return fmt.Errorf("%w: generate rdd %v outside (0, 1]", ErrBadPlan, rdd)
			}
		}
		for _, tf := range g.TF {
			if !(tf >= 0 && tf <= 1) {
				return fmt.Errorf("%w: generate tf %v outside [0, 1]", ErrBadPlan, tf)
			}
		}
		for _, n := range g.Sizes {
			if n < 0 {
				return fmt.Errorf("%w: generate size %d: %v", ErrBadPlan, n, job.ErrBadSize)
			}
		}
	}

	return nil
}

// Options converts the plan entry into solver options.
func (a AlgoSpec) Options() (tardiness.Options, error) {
	opts := tardiness.DefaultOptions()
	algo, err := tardiness.ParseAlgo(a.Algo)
	if err != nil {
		return opts, err
	}
	opts.Algo = algo
	if a.Epsilon != 0 {
		opts.Epsilon = a.Epsilon
	}
	if algo == tardiness.AlgoApprox && !(opts.Epsilon > 0 && opts.Epsilon <= 1) {
		return opts, fmt.Errorf("epsilon %v: %w", opts.Epsilon, tardiness.ErrBadEpsilon)
	}
	opts.Prune = !a.NoPrune
	if opts.Backend, err = memo.ParseBackend(a.Memo); err != nil {
		return opts, err
	}

	return opts, nil
}

func (p *Plan) resolve(path string) string {
	if filepath.IsAbs(path) || p.dir == "" {
		return path
	}

	return filepath.Join(p.dir, path)
}

// Cases expands globs and generated instances into a name-sorted case list.
//
// Errors: ErrBadPlan when nothing matches, parse errors of instance files.
func (p *Plan) Cases() ([]Case, error) {
	var cases []Case
	for _, pattern := range p.Instances {
		matches, err := filepath.Glob(p.resolve(pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrBadPlan, pattern, err)
		}
		for _, path := range matches {
			inst, err := job.ReadFile(path)
			if err != nil {
				return nil, err
			}
			meta, _ := job.ParseFileName(path)
			cases = append(cases, Case{Name: filepath.Base(path), Meta: meta, Inst: inst})
		}
	}

	if g := p.Generate; g != nil {
		seed := g.Seed
		for _, n := range g.Sizes {
			for _, rdd := range g.RDD {
				for _, tf := range g.TF {
					for k := 0; k < g.Count; k++ {
						inst, err := job.Generate(n, job.WithSeed(seed), job.WithRDD(rdd), job.WithTF(tf))
						if err != nil {
							return nil, fmt.Errorf("%w: generate n=%d: %v", ErrBadPlan, n, err)
						}
						seed++
						meta := job.FileMeta{RDD: rdd, TF: tf, Size: n, Seq: k + 1}
						cases = append(cases, Case{Name: job.FileName(meta), Meta: meta, Inst: inst})
					}
				}
			}
		}
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: no instances matched", ErrBadPlan)
	}
	sort.SliceStable(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })

	return cases, nil
}

// LoadAnswers returns the plan's known optima keyed by instance base name;
// nil when the plan names no answers file.
func (p *Plan) LoadAnswers() (map[string]int64, error) {
	if p.Answers == "" {
		return nil, nil
	}
	f, err := os.Open(p.resolve(p.Answers))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadAnswers(f)
}

// ReadAnswers parses lines "<file> <optimum>"; blank lines and lines
// starting with '#' are ignored.
//
// Errors: ErrBadPlan with the offending line number.
func ReadAnswers(r io.Reader) (map[string]int64, error) {
	var (
		out  = make(map[string]int64)
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: answers line %d: want \"<file> <optimum>\"", ErrBadPlan, line)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: answers line %d: %v", ErrBadPlan, line, err)
		}
		out[filepath.Base(fields[0])] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
