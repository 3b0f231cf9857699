package job

import (
	"fmt"
	"math"
	"math/rand"
)

// GenOption customizes Generate by mutating a genConfig before generation.
// Option constructors panic on meaningless values; Generate itself never panics.
type GenOption func(*genConfig)

type genConfig struct {
	rng  *rand.Rand
	rdd  float64 // relative range of due dates, (0, 1]
	tf   float64 // tardiness factor, [0, 1]
	maxP int64   // processing times drawn from U[1, maxP]
}

const (
	defaultGenSeed int64 = 1
	defaultRDD           = 0.6
	defaultTF            = 0.6
	defaultMaxP    int64 = 100
)

func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{rdd: defaultRDD, tf: defaultTF, maxP: defaultMaxP}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultGenSeed))
	}

	return cfg
}

// WithSeed makes generation reproducible from seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("job: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithRDD sets the relative range of due dates. Panics outside (0, 1].
func WithRDD(rdd float64) GenOption {
	if !(rdd > 0 && rdd <= 1) {
		panic("job: WithRDD(rdd∉(0,1])")
	}
	return func(c *genConfig) {
		c.rdd = rdd
	}
}

// WithTF sets the tardiness factor. Panics outside [0, 1].
func WithTF(tf float64) GenOption {
	if !(tf >= 0 && tf <= 1) {
		panic("job: WithTF(tf∉[0,1])")
	}
	return func(c *genConfig) {
		c.tf = tf
	}
}

// WithMaxP sets the upper bound of the processing-time distribution. Panics if < 1.
func WithMaxP(maxP int64) GenOption {
	if maxP < 1 {
		panic("job: WithMaxP(maxP<1)")
	}
	return func(c *genConfig) {
		c.maxP = maxP
	}
}

// Generate draws a random instance with the RDD/TF scheme:
//
//	pⱼ ~ U[1, maxP]
//	dⱼ ~ U[P·(1 − TF − RDD/2), P·(1 − TF + RDD/2)],  P = Σ pⱼ, clamped at 0
//
// A high TF pushes due dates early (many tardy jobs); a small RDD packs them
// together. These are the hardest regimes for the exact solver.
//
// Errors: ErrBadSize for n < 0.
//
// Complexity: O(n).
func Generate(n int, opts ...GenOption) (*Instance, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate n=%d: %w", n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)

	var (
		jobs  = make([]Job, n)
		total int64
		i     int
	)
	for i = 0; i < n; i++ {
		jobs[i].P = 1 + cfg.rng.Int63n(cfg.maxP)
		total += jobs[i].P
	}

	lo := int64(math.Floor(float64(total) * (1 - cfg.tf - cfg.rdd/2)))
	hi := int64(math.Ceil(float64(total) * (1 - cfg.tf + cfg.rdd/2)))
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	for i = 0; i < n; i++ {
		jobs[i].D = lo + cfg.rng.Int63n(hi-lo+1)
	}

	return &Instance{jobs: jobs}, nil
}
