package main

import (
	"os"

	"github.com/kaiwen/hrquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
