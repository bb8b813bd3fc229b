package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCommand(defaultCommandWiring())
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errSilentExit) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
