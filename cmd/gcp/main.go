package main

// The GCP binary runs the functions framework locally with every benchmark
// function registered under its name:
//
//		curl localhost:8080/primeNumber

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/asecurityteam/settings/v2"
	"github.com/serverless-bench/primebench"
	"github.com/serverless-bench/primebench/pkg/platform/gcp"
	"github.com/serverless-bench/primebench/pkg/workload"
)

func main() {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		help, errHelp := primebench.Help(workload.TargetCountGCP, gcp.TelemetryComponents()...)
		if errHelp != nil {
			panic(errHelp.Error())
		}
		fmt.Println(help)
		return
	}

	ctx := context.Background()
	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	prefixed := &settings.PrefixSource{Source: source, Prefix: []string{"primebench"}}
	w, err := workload.Load(ctx, prefixed, workload.TargetCountGCP)
	if err != nil {
		panic(err.Error())
	}
	logger, stat, err := gcp.LoadTelemetry(ctx, prefixed)
	if err != nil {
		panic(err.Error())
	}
	for name, inv := range w.Invocations() {
		gcp.Register(name, &gcp.Handler{Invocation: inv, Logger: logger, Stat: stat})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := funcframework.Start(port); err != nil {
		panic(err.Error())
	}
}
