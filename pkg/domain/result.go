package domain

// BenchmarkResult is produced once per prime benchmark invocation.
type BenchmarkResult struct {
	// ElapsedMillis is the wall-clock duration of the prime search.
	ElapsedMillis int64 `json:"elapsedMillis"`
}

// ColdStartResult is produced once per cold start probe invocation.
type ColdStartResult struct {
	// TimestampMillis is the time of the invocation in milliseconds
	// since the Unix epoch.
	TimestampMillis int64 `json:"timestampMillis"`
}
