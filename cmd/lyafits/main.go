// Package main provides the entry point for the lyafits CLI tool.
package main

import (
	"github.com/igmhub/lyafits/cmd/lyafits/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
