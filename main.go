package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func fatal(val interface{}) {
	fmt.Fprintln(os.Stderr, val)
	os.Exit(1)
}
