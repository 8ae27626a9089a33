package main

// The AWS binary serves the benchmark functions through the Lambda Invoke
// API by default so they can be exercised locally:
//
//		curl --request POST localhost:8080/2015-03-31/functions/primeNumber/invocations
//
// Deployments select a native lambda build mode and function at build time:
//
//		go build -ldflags "-X github.com/serverless-bench/primebench.BuildMode=lambda \
//			-X github.com/serverless-bench/primebench.TargetFunction=primeNumber" ./cmd/aws

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"
	"github.com/serverless-bench/primebench"
	"github.com/serverless-bench/primebench/pkg/workload"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		help, errHelp := primebench.Help(workload.TargetCountAWS)
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
	w, err := workload.Load(ctx, &settings.PrefixSource{Source: source, Prefix: []string{"primebench"}}, workload.TargetCountAWS)
	if err != nil {
		panic(err.Error())
	}
	if err := primebench.Start(ctx, source, primebench.NewStaticFetcher(w.Invocations())); err != nil {
		panic(err.Error())
	}
}
