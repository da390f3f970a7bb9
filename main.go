package main

import (
	"os"

	"github.com/mrxiaozhuox/karaty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
