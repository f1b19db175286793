// Command evensplit is the command-line client for an evensplit server.
// It keeps a local copy of the ledger so every command also works offline.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
