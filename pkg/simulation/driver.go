package simulation

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/atlas-desktop/montecarlo/internal/telemetry"
	"github.com/atlas-desktop/montecarlo/pkg/correlated"
	"github.com/atlas-desktop/montecarlo/pkg/matrix"
	"github.com/atlas-desktop/montecarlo/pkg/mcerrors"
	"github.com/atlas-desktop/montecarlo/pkg/results"
	"github.com/atlas-desktop/montecarlo/pkg/stats"
	"go.uber.org/zap"
)

// Model is the user-supplied scalar model invoked once per iteration with
// the sampled input vector (in the order Inputs were added).
type Model func(inputs []float64) float64

// Driver executes Monte Carlo iterations against a set of Inputs and a
// Model, producing Results. The zero value is not usable; construct with
// NewDriver.
type Driver struct {
	logger    *zap.Logger
	metrics   *telemetry.Metrics
	inputs    []*Input
	model     Model
	iterations int
	workers   int
	seed      int64
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithLogger injects a *zap.Logger; library code defaults to a no-op
// logger when this is omitted.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithMetrics injects a *telemetry.Metrics; driver runs are unmetered
// when this is omitted.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// WithWorkers sets the number of parallel worker goroutines. workers <= 1
// runs iterations sequentially on the calling goroutine (the default).
func WithWorkers(workers int) Option {
	return func(d *Driver) { d.workers = workers }
}

// WithSeed sets the master RNG seed. A non-zero seed makes runs
// deterministic: a sequential run draws every iteration from one stream
// seeded from it, and a parallel run gives each iteration its own
// substream derived from the seed and the iteration index, so its output
// does not depend on which worker runs which iteration. The two paths use
// different streams, so a sequential and a parallel run with the same
// seed produce different values. Seed == 0 (the default) uses a
// time-based seed per worker, so runs are not reproducible.
func WithSeed(seed int64) Option {
	return func(d *Driver) { d.seed = seed }
}

// NewDriver constructs a Driver over inputs and model, run for the given
// number of iterations. Fails with NoInputsError if inputs is empty and
// InsufficientIterationsError if iterations == 0.
func NewDriver(inputs []*Input, model Model, iterations int, opts ...Option) (*Driver, error) {
	if len(inputs) == 0 {
		return nil, &mcerrors.NoInputsError{}
	}
	if iterations == 0 {
		return nil, &mcerrors.InsufficientIterationsError{Requested: iterations}
	}
	d := &Driver{
		logger:     zap.NewNop(),
		inputs:     inputs,
		model:      model,
		iterations: iterations,
		workers:    1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// rngFor returns a *rand.Rand substream for a given worker/iteration
// index.
func (d *Driver) rngFor(idx int) *rand.Rand {
	if d.seed != 0 {
		return rand.New(rand.NewSource(d.seed + int64(idx)))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano() + int64(idx)))
}

// Run executes the independent sampling path: for each of d.iterations
// iterations, sample every input, invoke the model, and collect outcomes
// in iteration order. A non-finite model output aborts the run with
// InvalidModelError carrying the failing iteration index.
func (d *Driver) Run() (*results.Results, error) {
	start := time.Now()
	d.logger.Info("starting independent simulation run",
		zap.Int("iterations", d.iterations),
		zap.Int("inputs", len(d.inputs)),
		zap.Int("workers", d.workers),
	)

	outcomes := make([]float64, d.iterations)

	sampleAndEval := func(rng *rand.Rand, i int) (float64, error) {
		vector := make([]float64, len(d.inputs))
		for j, in := range d.inputs {
			vector[j] = in.Sample(rng)
		}
		out := d.model(vector)
		if math.IsNaN(out) || math.IsInf(out, 0) {
			return 0, &mcerrors.InvalidModelError{Iteration: i, Reason: "non-finite model output"}
		}
		return out, nil
	}

	if d.workers <= 1 {
		rng := d.rngFor(0)
		for i := 0; i < d.iterations; i++ {
			out, err := sampleAndEval(rng, i)
			if err != nil {
				d.recordFailure()
				return nil, err
			}
			outcomes[i] = out
		}
	} else {
		if err := d.runParallel(outcomes, sampleAndEval); err != nil {
			return nil, err
		}
	}

	d.recordIterations(d.iterations, time.Since(start))
	d.logger.Info("independent simulation run complete", zap.Duration("elapsed", time.Since(start)))
	return results.New(outcomes)
}

// runParallel distributes iterations across d.workers goroutines over a
// jobs channel. Without a seed each worker holds its own time-seeded
// *rand.Rand; with a seed each iteration draws from its own substream.
func (d *Driver) runParallel(outcomes []float64, sampleAndEval func(*rand.Rand, int) (float64, error)) error {
	jobs := make(chan int, d.iterations)
	errs := make(chan error, d.workers)
	var wg sync.WaitGroup

	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := d.rngFor(workerID)
			for idx := range jobs {
				iterRNG := rng
				if d.seed != 0 {
					iterRNG = d.rngFor(idx)
				}
				out, err := sampleAndEval(iterRNG, idx)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					return
				}
				outcomes[idx] = out
			}
		}(w)
	}

	for i := 0; i < d.iterations; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)

	if err, ok := <-errs; ok {
		d.recordFailure()
		return err
	}
	return nil
}

// RunCorrelated executes the Iman-Conover correlated sampling path. It
// draws N samples per input and sorts them; then, for each iteration, it
// draws a correlated standard normal vector z and takes input j's value
// from its sorted sample at index floor(Phi(z_j)*(N-1)), so the target
// correlation shapes the ranks of the joint sample. Indices are picked
// independently per iteration, with replacement: every produced value of
// an input comes from its sorted sample, but the produced values are not
// a permutation of that sample. Iterations run sequentially on a single
// stream whatever the worker count.
func (d *Driver) RunCorrelated(target *matrix.CorrelationMatrix) (*results.Results, error) {
	m := len(d.inputs)
	if target.Dim() != m {
		return nil, &mcerrors.DimensionMismatchError{
			Context:  "RunCorrelated: inputs vs correlation matrix",
			Expected: m,
			Actual:   target.Dim(),
		}
	}

	start := time.Now()
	d.logger.Info("starting correlated simulation run (Iman-Conover)",
		zap.Int("iterations", d.iterations),
		zap.Int("inputs", m),
	)

	rng := d.rngFor(0)

	// Step 2: draw N samples per input, sort ascending.
	sortedMarginals := make([][]float64, m)
	for j, in := range d.inputs {
		draws := make([]float64, d.iterations)
		for t := 0; t < d.iterations; t++ {
			draws[t] = in.Sample(rng)
		}
		sort.Float64s(draws)
		sortedMarginals[j] = draws
	}

	// Step 3: correlated standard normals, mapped to uniforms via Phi.
	means := make([]float64, m)
	normals, err := correlated.New(means, target)
	if err != nil {
		return nil, err
	}

	outcomes := make([]float64, d.iterations)
	n := d.iterations
	for t := 0; t < n; t++ {
		z := normals.Sample(rng)

		// Step 4: build the joint sample by rank lookup. Boundary
		// handling uses floor(u*(N-1)) clamped to [0, N-1].
		vector := make([]float64, m)
		for j := 0; j < m; j++ {
			u := stats.StandardNormalCDF(z[j])
			idx := int(math.Floor(u * float64(n-1)))
			if idx < 0 {
				idx = 0
			}
			if idx > n-1 {
				idx = n - 1
			}
			vector[j] = sortedMarginals[j][idx]
		}

		// Step 5: evaluate the model.
		out := d.model(vector)
		if math.IsNaN(out) || math.IsInf(out, 0) {
			d.recordFailure()
			return nil, &mcerrors.InvalidModelError{Iteration: t, Reason: "non-finite model output"}
		}
		outcomes[t] = out
	}

	d.recordIterations(n, time.Since(start))
	d.logger.Info("correlated simulation run complete", zap.Duration("elapsed", time.Since(start)))
	return results.New(outcomes)
}

func (d *Driver) recordIterations(n int, elapsed time.Duration) {
	if d.metrics == nil {
		return
	}
	d.metrics.IterationsTotal.Add(float64(n))
	d.metrics.RunDuration.Observe(elapsed.Seconds())
}

func (d *Driver) recordFailure() {
	if d.metrics == nil {
		return
	}
	d.metrics.ModelFailuresTotal.Inc()
}
