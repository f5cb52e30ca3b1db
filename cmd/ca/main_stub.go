//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The window build of rulelife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Use `go run ./cmd/rulelife` for the terminal version, or `go run -tags ebiten ./cmd/ca`.")
	os.Exit(2)
}
