// Package main is the entry point for the hanrename CLI.
package main

import "github.com/dsptools/hanrename/cmd"

func main() {
	cmd.Execute()
}
