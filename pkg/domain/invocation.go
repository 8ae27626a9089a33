package domain

import "context"

// Invocation is the platform agnostic body of a serverless function. Each
// platform adapter calls Invoke once per trigger and shapes the returned
// value into the response format the platform expects. The returned value
// must be serializable as JSON.
type Invocation interface {
	Invoke(ctx context.Context) (interface{}, error)
}

// Benchmarker runs a compute benchmark that searches for the given
// number of primes.
type Benchmarker interface {
	Run(targetCount int) (BenchmarkResult, error)
}

// Clock reports the current time of an invocation.
type Clock interface {
	Now() ColdStartResult
}
