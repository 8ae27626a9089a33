package primebench

import (
	"context"
	"testing"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchLambdaStartFn(t *testing.T) *lambda.Handler {
	var started lambda.Handler
	original := LambdaStartFn
	t.Cleanup(func() { LambdaStartFn = original })
	LambdaStartFn = func(h lambda.Handler) { started = h }
	return &started
}

func newTestSource(t *testing.T) settings.Source {
	source, err := settings.NewEnvSource([]string{
		"PRIMEBENCH_LAMBDA_LOGLEVEL=ERROR",
	})
	require.NoError(t, err)
	return source
}

func TestStartModeUnknown(t *testing.T) {
	err := StartMode(context.Background(), newTestSource(t), &StaticFetcher{}, "unknown", "")
	require.Error(t, err)
}

func TestStartLambdaRequiresTarget(t *testing.T) {
	started := patchLambdaStartFn(t)
	err := StartMode(context.Background(), newTestSource(t), &StaticFetcher{}, BuildModeLambda, "")
	require.Error(t, err)
	assert.Nil(t, *started)
}

func TestStartLambdaNotFound(t *testing.T) {
	started := patchLambdaStartFn(t)
	err := StartLambda(context.Background(), newTestSource(t), &StaticFetcher{}, testName)
	require.IsType(t, NotFoundError{}, err)
	assert.Nil(t, *started)
}

func TestStartLambda(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		want    string
		wantRun bool
	}{
		{name: "native", mode: BuildModeLambda, want: `"ran"`, wantRun: true},
		{name: "mocked", mode: BuildModeLambdaMock, want: `""`, wantRun: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			started := patchLambdaStartFn(t)
			ran := false
			var logger Logger
			fetcher := &StaticFetcher{Functions: map[string]Function{
				testName: NewFunction(func(ctx context.Context) (string, error) {
					ran = true
					logger = logevent.FromContext(ctx)
					return "ran", nil
				}),
			}}

			err := StartMode(context.Background(), newTestSource(t), fetcher, tt.mode, testName)
			require.NoError(t, err)
			require.NotNil(t, *started)

			out, err := (*started).Invoke(context.Background(), []byte("{}"))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
			assert.Equal(t, tt.wantRun, ran)
			if tt.wantRun {
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewHTTPRuntimeDefaults(t *testing.T) {
	source, err := settings.NewEnvSource([]string{})
	require.NoError(t, err)
	for _, mockMode := range []bool{false, true} {
		rt, err := newHTTPRuntime(context.Background(), source, &StaticFetcher{}, mockMode)
		require.NoError(t, err)
		assert.NotNil(t, rt)
	}
}

func TestNewHTTPRuntimeBadSettings(t *testing.T) {
	source, err := settings.NewEnvSource([]string{
		"PRIMEBENCH_RUNTIME_STATS_OUTPUT=unknown",
	})
	require.NoError(t, err)
	_, err = newHTTPRuntime(context.Background(), source, &StaticFetcher{}, false)
	require.Error(t, err)
}
