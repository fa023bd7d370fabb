// Command oversample balances the classes of a labelled CSV file by random
// oversampling.
//
//	oversample resample --input train.csv --output balanced.csv --label class --ratio 0.5
//	oversample plan --input train.csv --ratios fraud=1,chargeback=0.5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
