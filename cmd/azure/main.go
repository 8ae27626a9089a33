package main

// The Azure binary is a Functions custom handler. The Functions host starts
// it and forwards invocations to the port named by
// FUNCTIONS_CUSTOMHANDLER_PORT.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"
	"github.com/serverless-bench/primebench"
	"github.com/serverless-bench/primebench/pkg/platform/azure"
	"github.com/serverless-bench/primebench/pkg/workload"
)

func main() {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		help, errHelp := primebench.Help(workload.TargetCountAzure)
		if errHelp != nil {
			panic(errHelp.Error())
		}
		fmt.Println(help)
		return
	}

	env := os.Environ()
	if port := os.Getenv("FUNCTIONS_CUSTOMHANDLER_PORT"); port != "" {
		env = append(env, "PRIMEBENCH_RUNTIME_HTTPSERVER_ADDRESS=:"+port)
	}
	ctx := context.Background()
	envSource, err := settings.NewEnvSource(env)
	if err != nil {
		panic(err.Error())
	}
	source := &settings.PrefixSource{Source: envSource, Prefix: []string{"primebench"}}
	w, err := workload.Load(ctx, source, workload.TargetCountAzure)
	if err != nil {
		panic(err.Error())
	}
	rt, err := azure.New(ctx, source, w.Invocations())
	if err != nil {
		panic(err.Error())
	}
	if err := rt.Run(); err != nil {
		panic(err.Error())
	}
}
