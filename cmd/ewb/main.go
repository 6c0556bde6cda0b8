package main

import (
	"os"

	"github.com/miguel-lattuada/ewb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
