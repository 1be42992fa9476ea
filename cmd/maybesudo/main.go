package main

import (
	"fmt"
	"os"

	"github.com/maybe-sudo/maybesudo"
	"github.com/maybe-sudo/maybesudo/runner"
)

func main() {
	err := maybesudo.Launch(maybesudo.FromEnv(), os.Args[1:])
	// reached only when the handoff itself failed
	fmt.Fprintf(os.Stderr, "maybesudo: %v\n", err)
	os.Exit(runner.ExitCode(err))
}
