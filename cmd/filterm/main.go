package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/effect_ive_filter/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
