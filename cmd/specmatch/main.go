// Package main provides the entry point for the specmatch CLI tool.
package main

import "github.com/transactionalblog/sigmod-contest-2020/cmd/specmatch/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
