// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense matrix operations from the command line.
//
//	matcalc det "1,1;1,2"
//	matcalc inverse --precision 3 "1,1,2;1,2,3;2,3,4"
//	matcalc mul "1,2" "1,0,2;0,1,3"
package main

import (
	"fmt"
	"os"
)

// main builds the command tree and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
