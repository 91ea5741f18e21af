package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reckonhq/reckon"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Replays the transaction log and writes the resulting account balances to stdout.")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open transactions file %q: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := reckon.Run(f, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}
}
