// main holds the entry logic for the tfvalidator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/WilliamVaron23/tf-pipeline-validator/cmd"
)

// main is the entry point for the validator. Command errors surface here
// because the root command silences its own error printing.
func main() {
	err := cmd.Execute()
	cmd.CloseLogs()
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Println("⚠️  Warning: could not stop profiling:", perr)
	}
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
