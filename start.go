package primebench

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that implements parts of the Lambda API.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but with mocked versions
	// of the lambda functions loaded.
	BuildModeHTTPMock = "http_mock"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
	// BuildModeLambdaMock runs the official lambda server using the lambda
	// SDK but with a mocked version of the loaded function. Using this mode
	// requires the TargetFunction value to be set.
	BuildModeLambdaMock = "lambda_mock"

	settingsPrefix = "primebench"
)

var (
	// BuildMode determines the behavior of the Start method. The suggested
	// way to set it is through build variables by adding
	// `-ldflags "-X github.com/serverless-bench/primebench.BuildMode=<value>"`
	// to `go build` or `go run` commands. It may also be set in code before
	// calling Start. StartMode accepts the mode as a parameter instead.
	BuildMode = BuildModeHTTP
	// TargetFunction is used when building in a native lambda mode to select a
	// single function to run. This value can be set in all the same ways as the
	// BuildMode value.
	TargetFunction = ""
	// LambdaStartFn starts the native lambda server for a single function.
	// It does not return under normal operation.
	LambdaStartFn = lambda.StartHandler
)

// Start is a replacement for the lambda.Start method. By default, this
// method will start the lambda HTTP API and will invoke functions loaded
// using the given Fetcher.
func Start(ctx context.Context, s settings.Source, f Fetcher) error {
	return StartMode(ctx, s, f, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode and target function.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f)
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTPMock(ctx, s, f)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, f, target)
	case strings.EqualFold(mode, BuildModeLambdaMock):
		return StartLambdaMock(ctx, s, f, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func newHTTPRuntime(ctx context.Context, s settings.Source, f Fetcher, mockMode bool) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		Fetcher:  &traceFetcher{Fetcher: f},
		MockMode: mockMode,
	}
	router := NewRouter(conf)
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, f, false)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartHTTPMock runs the HTTP API with mocked out functions.
func StartHTTPMock(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, &MockingFetcher{Fetcher: f}, true)
	if err != nil {
		return err
	}
	return rt.Run()
}

// LambdaConfig contains settings for the native lambda modes.
type LambdaConfig struct {
	LogLevel string `description:"Minimum level of emitted log events."`
}

// Name of the configuration root.
func (*LambdaConfig) Name() string {
	return "lambda"
}

// LambdaComponent builds the logger and stat client given to functions
// running in a native lambda mode.
type LambdaComponent struct{}

// Settings generates a config populated with defaults.
func (*LambdaComponent) Settings() *LambdaConfig {
	return &LambdaConfig{LogLevel: "INFO"}
}

// New constructs the runtime dependencies. Lambda forwards stdout to
// CloudWatch Logs. Stats are sent to the client found in ctx, if any.
func (*LambdaComponent) New(ctx context.Context, conf *LambdaConfig) (*LambdaRuntime, error) {
	return &LambdaRuntime{
		Logger: logevent.New(logevent.Config{Level: conf.LogLevel, Output: os.Stdout}),
		Stat:   xstats.FromContext(ctx),
	}, nil
}

// LambdaRuntime holds the values injected into native lambda invocations.
type LambdaRuntime struct {
	Logger Logger
	Stat   Stat
}

// StartLambda runs the target function with the official lambda SDK.
func StartLambda(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	if target == "" {
		return fmt.Errorf("build mode %s requires a target function", BuildModeLambda)
	}
	rt := new(LambdaRuntime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		&LambdaComponent{},
		rt,
	)
	if err != nil {
		return err
	}
	f = &traceFetcher{
		Fetcher: &statFetcher{
			Stat:    rt.Stat,
			Fetcher: &loggingFetcher{Logger: rt.Logger, Fetcher: f},
		},
	}
	fn, err := f.Fetch(ctx, target)
	if err != nil {
		return err
	}
	LambdaStartFn(fn)
	return nil
}

// StartLambdaMock runs a mocked version of the target function with the
// official lambda SDK.
func StartLambdaMock(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	return StartLambda(ctx, s, &MockingFetcher{Fetcher: f}, target)
}
