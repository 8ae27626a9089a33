// Package azure adapts benchmark functions to Azure Functions through the
// custom handler protocol. The Functions host forwards each trigger as an
// HTTP POST to /{functionName} and expects an invocation response naming
// the value of every output binding. The functions in this project bind a
// single HTTP output named "res".
package azure
