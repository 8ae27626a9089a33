package workload

import (
	"context"
	"time"

	"github.com/serverless-bench/primebench/pkg/domain"
)

const statBenchmarkElapsed = "primebench.benchmark.elapsed"

type benchmarkCompleted struct {
	TargetCount   int    `logevent:"target_count"`
	ElapsedMillis int64  `logevent:"elapsed_ms"`
	Message       string `logevent:"message,default=benchmark-completed"`
}

type benchmarkFailed struct {
	TargetCount int    `logevent:"target_count"`
	Reason      string `logevent:"reason"`
	Message     string `logevent:"message,default=benchmark-failed"`
}

// PrimeNumber runs the prime benchmark with a fixed target count.
type PrimeNumber struct {
	Benchmark   domain.Benchmarker
	TargetCount int
	LogFn       domain.LogFn
	StatFn      domain.StatFn
}

// Invoke runs the benchmark and returns a domain.BenchmarkResult.
func (p *PrimeNumber) Invoke(ctx context.Context) (interface{}, error) {
	res, err := p.Benchmark.Run(p.TargetCount)
	if err != nil {
		p.LogFn(ctx).Error(benchmarkFailed{TargetCount: p.TargetCount, Reason: err.Error()})
		return nil, err
	}
	p.StatFn(ctx).Timing(statBenchmarkElapsed, time.Duration(res.ElapsedMillis)*time.Millisecond)
	p.LogFn(ctx).Info(benchmarkCompleted{TargetCount: p.TargetCount, ElapsedMillis: res.ElapsedMillis})
	return res, nil
}
