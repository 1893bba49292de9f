// Command gridbalance computes and inspects load-balanced distributions
// of ocean model grids. See the balance, stats and view subcommands.
package main

import (
	"os"

	"github.com/oceangrid/gridbalance/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
