package main

import "github.com/ZSeanYves/tmplpack/cmd"

// main is the entry point of the tmplpack CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
