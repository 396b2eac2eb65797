package main

import (
	"os"

	"github.com/hil-broker/broker/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
