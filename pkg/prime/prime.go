package prime

import (
	"time"

	"github.com/serverless-bench/primebench/pkg/domain"
)

// IsPrime reports whether n is prime by trial division. Divisors are tested
// up to and including the integer square root of n. The bound is checked as
// i <= n/i so that it is exact for perfect squares and cannot overflow.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Scan counts upward from zero until targetCount primes have been found.
// Each prime is passed to visit, when not nil, in the order it is found.
// The returned value is the last candidate scanned which is always the
// targetCount-th prime.
func Scan(targetCount int, visit func(p uint64)) (uint64, error) {
	if targetCount <= 0 {
		return 0, domain.InvalidArgumentError{
			Name:   "targetCount",
			Value:  targetCount,
			Reason: "must be a positive integer",
		}
	}
	var candidate uint64
	var last uint64
	found := 0
	for found < targetCount {
		if IsPrime(candidate) {
			found++
			last = candidate
			if visit != nil {
				visit(candidate)
			}
		}
		candidate++
	}
	return last, nil
}

// Benchmark times a prime search. The zero value is ready to use and is
// safe for concurrent use.
type Benchmark struct {
	// Now is the clock used for timing. The default is time.Now.
	Now func() time.Time
}

func (b *Benchmark) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// Run searches for targetCount primes and reports the elapsed wall-clock
// time of the search.
func (b *Benchmark) Run(targetCount int) (domain.BenchmarkResult, error) {
	start := b.now()
	if _, err := Scan(targetCount, nil); err != nil {
		return domain.BenchmarkResult{}, err
	}
	elapsed := b.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return domain.BenchmarkResult{ElapsedMillis: elapsed.Milliseconds()}, nil
}
