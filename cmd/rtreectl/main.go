// Command rtreectl runs scripted workloads against an R-Tree and prints the
// results or the resulting tree.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
