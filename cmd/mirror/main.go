// Command mirror renders the virtual makeup pipeline on synthetic faces.
//
// Usage:
//
//	mirror demo --scheme dense468 --preset "Date Night" --output look.png
//	mirror tone 220 180 160
//	mirror looks
//
// Every flag can also be set in a YAML file passed with --config or with
// a MIRROR_ environment variable, e.g. MIRROR_SCHEME=sparse68.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
