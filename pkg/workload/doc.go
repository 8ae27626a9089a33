// Package workload contains the platform agnostic bodies of every benchmark
// function. Each type implements domain.Invocation and is wrapped by a
// platform adapter in the platform packages.
package workload
