// Command blog serves Markdown posts over HTTP and offers small helpers for
// listing, rendering and scaffolding posts from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
