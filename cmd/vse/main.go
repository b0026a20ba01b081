package main

import (
	"os"

	"github.com/jamesWalker55/video-subtitles-explorer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
