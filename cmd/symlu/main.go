// Command symlu factors a square matrix into L·U by symbolic constraint
// propagation and prints the factors or the symbolic product.
//
//	symlu decompose                          # the built-in 3×3 demo matrix
//	symlu decompose --matrix "4,3;6,3"       # inline, rows split by ';'
//	symlu decompose -f system.toml --verify  # file input, numeric cross-check
//	symlu expand --size 3                    # symbolic L·U for a 3×3
//
// Settings resolve as flags > SYMLU_* environment > --config file > defaults.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
