package workload

import (
	"context"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/go-playground/validator/v10"
	"github.com/serverless-bench/primebench/pkg/coldstart"
	"github.com/serverless-bench/primebench/pkg/domain"
	"github.com/serverless-bench/primebench/pkg/prime"
)

const (
	// FunctionPrimeNumber is the name of the prime benchmark function.
	FunctionPrimeNumber = "primeNumber"
	// FunctionColdStart is the name of the cold start probe function.
	FunctionColdStart = "coldStart"

	// TargetCountAWS is the number of primes searched for on AWS Lambda.
	TargetCountAWS = 500000
	// TargetCountAzure is the number of primes searched for on Azure Functions.
	TargetCountAzure = 100000
	// TargetCountGCP is the number of primes searched for on Google Cloud Functions.
	TargetCountGCP = 100000
)

// Config contains the benchmark settings.
type Config struct {
	TargetCount int `description:"Number of primes to find in each prime benchmark invocation." validate:"gt=0"`
}

// Name of the configuration root.
func (*Config) Name() string {
	return "benchmark"
}

// Component loads the benchmark functions. DefaultTargetCount is the
// platform constant used when no override is configured.
type Component struct {
	DefaultTargetCount int
}

// NewComponent populates the defaults.
func NewComponent(defaultTargetCount int) *Component {
	return &Component{DefaultTargetCount: defaultTargetCount}
}

// Settings generates a config populated with defaults.
func (c *Component) Settings() *Config {
	return &Config{TargetCount: c.DefaultTargetCount}
}

// New validates the config and constructs the benchmark functions.
func (*Component) New(_ context.Context, conf *Config) (*Workloads, error) {
	if err := validator.New().Struct(conf); err != nil {
		return nil, err
	}
	return &Workloads{
		PrimeNumber: &PrimeNumber{
			Benchmark:   &prime.Benchmark{},
			TargetCount: conf.TargetCount,
			LogFn:       runhttp.LoggerFromContext,
			StatFn:      runhttp.StatFromContext,
		},
		ColdStart: &ColdStart{
			Clock: coldstart.NewProbe(),
			LogFn: runhttp.LoggerFromContext,
		},
	}, nil
}

// Workloads is the set of benchmark functions shared by every platform.
type Workloads struct {
	PrimeNumber *PrimeNumber
	ColdStart   *ColdStart
}

// Invocations returns the functions keyed by their public names.
func (w *Workloads) Invocations() map[string]domain.Invocation {
	return map[string]domain.Invocation{
		FunctionPrimeNumber: w.PrimeNumber,
		FunctionColdStart:   w.ColdStart,
	}
}

// Load reads the benchmark settings from the source and constructs the
// benchmark functions.
func Load(ctx context.Context, s settings.Source, defaultTargetCount int) (*Workloads, error) {
	w := new(Workloads)
	err := settings.NewComponent(ctx, s, NewComponent(defaultTargetCount), w)
	return w, err
}
