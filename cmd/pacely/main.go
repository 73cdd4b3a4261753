// Package main is the single-binary entrypoint for Pacely.
// One binary is both the CLI and the API server behind the web client.
package main

import "github.com/pacely/pacely/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
