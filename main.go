// Package main is the entry point for the bugtally CLI.
package main

import "bugtally.dev/pkg/bugtally/cmd"

func main() {
	cmd.Execute()
}
