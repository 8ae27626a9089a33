package primebench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/serverless-bench/primebench/pkg/platform"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationTypeError           = "Error"
	invocationErrorTypeHeader     = "X-Error-Type"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"

	statInvocation = "primebench.invocation"
)

type invocationFailed struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invocation-failed"`
}

// bgContext is used to detach the *http.Request context from the http.Handler
// lifecycle. The request context is canceled when the handler returns but
// Event invocations keep running in the background and still need the
// request scoped logger and stat client. Values are read from the request
// context while every other method comes from context.Background().
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError implements the common Lambda error response
// JSON object that is included as the response body for
// exception cases.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

// Invoke implements the API of the same name from the AWS Lambda API.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Differences from the AWS API:
//
//   - The "Tail" option for the LogType header does not cause the
//     response to include partial logs.
//
//   - The "Qualifier" parameter is ignored and the reported
//     execution version is always "latest".
//
//   - The "Error" invocation type is accepted in mock mode. It returns the
//     documented function error whose type name matches the X-Error-Type
//     header without running the function.
type Invoke struct {
	LogFn      LogFn
	StatFn     StatFn
	URLParamFn URLParamFn
	Fetcher    Fetcher
	MockMode   bool
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.Fetch(r.Context(), fnName)
	switch errFn.(type) {
	case nil:
	case NotFoundError:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	default:
		h.LogFn(r.Context()).Error(invocationFailed{Function: fnName, Reason: errFn.Error()})
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse // This is the default value in AWS.
	}
	ctx := r.Context()
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest) // Matches JSON parsing errors for the body
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	w.Header().Set(invocationVersionHeader, "latest")
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
		return
	case invocationTypeEvent:
		h.StatFn(ctx).Count(statInvocation, 1, "function:"+fnName, "type:"+fnType)
		logFn := h.LogFn
		bg := &bgContext{Context: context.Background(), Values: ctx}
		go func() {
			if _, err := fn.Invoke(bg, b); err != nil {
				logFn(bg).Error(invocationFailed{Function: fnName, Reason: err.Error()})
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		h.StatFn(ctx).Count(statInvocation, 1, "function:"+fnName, "type:"+fnType)
		rb, errInvoke := fn.Invoke(ctx, b)
		if errInvoke != nil {
			h.LogFn(ctx).Error(invocationFailed{Function: fnName, Reason: errInvoke.Error()})
			writeFunctionError(w, errInvoke)
			return
		}
		w.WriteHeader(http.StatusOK)
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	case invocationTypeError:
		if !h.MockMode {
			writeInvalidParameter(w, "InvocationType Error is only valid in mock mode")
			return
		}
		errType := r.Header.Get(invocationErrorTypeHeader)
		for _, err := range fn.Errors() {
			if errorTypeName(err) == errType {
				writeFunctionError(w, err)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(NotFoundError{ID: errType}))
	default:
		writeInvalidParameter(w, fmt.Sprintf("InvocationType %s not valid", fnType))
	}
}

func writeFunctionError(w http.ResponseWriter, err error) {
	statusCode := statusFromError(err)
	if statusCode > 299 {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
	}
	if statusCode > 499 {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
	}
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}

func writeInvalidParameter(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest) // Matches the InvalidParameterValueException code
	_ = json.NewEncoder(w).Encode(lambdaError{
		Message:    msg,
		Type:       "InvalidParameterValueException",
		StackTrace: errResponseStackTrace,
	})
}

// errResponseStackTrace is used to populate the stackTrace attribute of a Lambda
// error. Stack traces are not extracted so the same empty slice is reused.
var errResponseStackTrace = []string{}

func errorTypeName(err error) string {
	return platform.NewErrorResponse(err).Type
}

func responseFromError(err error) lambdaError {
	r := platform.NewErrorResponse(err)
	return lambdaError{
		Message:    r.Message,
		Type:       r.Type,
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError treats malformed payloads as client errors and defers
// to the domain mapping for everything else.
func statusFromError(err error) int {
	switch err.(type) {
	case *json.InvalidUTF8Error: // nolint
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalFieldError: // nolint
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	case *json.SyntaxError:
		return http.StatusBadRequest
	default:
		return platform.StatusFromError(err)
	}
}
