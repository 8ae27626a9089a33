package primebench

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/serverless-bench/primebench/pkg/domain"
	"github.com/serverless-bench/primebench/pkg/platform/aws"
)

// LambdaFunction is a small wrapper around the lambda.Handler
// that preserves the original signature of the function for later
// retrieval.
type LambdaFunction struct {
	lambda.Handler
	source interface{}
	errors []error
}

// Source returns the original function signature.
func (f *LambdaFunction) Source() interface{} {
	return f.source
}

// Errors returns a list of errors the Lambda might return. This is
// only populated if the function was constructed using the
// NewFunctionWithErrors constructor.
func (f *LambdaFunction) Errors() []error {
	return f.errors
}

// NewFunctionWithErrors allows for documenting the various error types that
// can be returned by the function. The errors are returned on request when
// running in mock mode.
func NewFunctionWithErrors(v interface{}, errors ...error) Function {
	return &LambdaFunction{
		Handler: lambda.NewHandler(v),
		source:  v,
		errors:  errors,
	}
}

// NewFunction is a replacement for lambda.NewHandler that returns
// a Function.
func NewFunction(v interface{}) Function {
	return NewFunctionWithErrors(v)
}

// NewInvocationFunction exposes a benchmark function as a Lambda
// function that responds with an API Gateway proxy response.
func NewInvocationFunction(inv domain.Invocation) Function {
	h := &aws.Handler{Invocation: inv}
	return NewFunctionWithErrors(h.Handle, domain.InvalidArgumentError{})
}
