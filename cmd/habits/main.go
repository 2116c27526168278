// Command habits is an interactive habit tracker.
package main

import "github.com/mesh-intelligence/habits/internal/cli"

func main() {
	cli.Execute()
}
