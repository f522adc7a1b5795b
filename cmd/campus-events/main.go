package main

import (
	"os"

	"github.com/campusconnect/campus-events/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
