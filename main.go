// Package main is the entry point for the cleanarch CLI.
package main

import "cleanarch.dev/pkg/cleanarch/cmd"

func main() {
	cmd.Execute()
}
