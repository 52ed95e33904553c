package main

import (
	"os"

	"github.com/smartgl/sgl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
