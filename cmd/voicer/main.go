package main

import "github.com/Conceptual-Machines/magda-voicer/internal/cli"

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	cli.Execute(releaseVersion)
}
