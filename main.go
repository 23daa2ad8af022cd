package main

import (
	"os"

	"github.com/gopak/clipsearch/cmd"
	"github.com/gopak/clipsearch/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error(err.Error())
		logging.Close()
		os.Exit(1)
	}
}
