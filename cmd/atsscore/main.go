package main

import (
	"os"

	"ats-resume-scorer/internal/cli"
)

// Version information (set by build script)
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
