package primebench

import (
	"context"
	"reflect"
)

// MockingFetcher sources original functions from another Fetcher
// and mocks out the results. Mocked functions return the zero value of
// their output type without running the benchmark.
type MockingFetcher struct {
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and mocks the results.
func (f *MockingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return mockFunction(r), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func mockFunction(f Function) Function {
	// The lambda SDK already validated the signature so any function with
	// outputs returns an error last and at most one value before it.
	t := reflect.TypeOf(f.Source())
	out := t.NumOut()
	returnsError := out == 1 || out == 2
	var returnType reflect.Type
	if out == 2 {
		returnType = t.Out(0)
	}
	mockFn := newMockFn(returnType, returnsError)
	newFn := reflect.MakeFunc(t, mockFn)
	return NewFunctionWithErrors(
		newFn.Interface(),
		f.Errors()...,
	)
}

func newMockFn(returnType reflect.Type, returnsError bool) func(args []reflect.Value) []reflect.Value {
	return func(_ []reflect.Value) []reflect.Value {
		res := make([]reflect.Value, 0, 2)
		if returnType != nil {
			res = append(res, reflect.Zero(returnType))
		}
		if returnsError {
			res = append(res, reflect.Zero(errorType))
		}
		return res
	}
}
