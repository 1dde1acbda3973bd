package main

import (
	"os"

	cmd "github.com/wikisync/wikisync/internal"
	"github.com/wikisync/wikisync/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.LogError(err.Error())
		os.Exit(1)
	}
}
