package primebench

import (
	"context"

	"github.com/serverless-bench/primebench/pkg/domain"
)

// StaticFetcher is an implementation of the Fetcher that maintains a static mapping
// of names to Function instances. All Functions are compiled into the binary and
// invoked within the process. Adding or changing a Function requires a new build.
type StaticFetcher struct {
	// Functions is the underlying static map of function names to executable
	// functions. The keys of the map will be used as the name of the Function.
	Functions map[string]Function
}

// NewStaticFetcher exposes each benchmark function under its map key.
func NewStaticFetcher(invocations map[string]domain.Invocation) *StaticFetcher {
	functions := make(map[string]Function, len(invocations))
	for name, inv := range invocations {
		functions[name] = NewInvocationFunction(inv)
	}
	return &StaticFetcher{Functions: functions}
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NotFoundError{ID: name}
	}
	return h, nil
}
