package main

import (
	"os"

	"github.com/zostay/go-mailcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
