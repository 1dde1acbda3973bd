package logger

import (
	"io"
	"os"
)

var (
	FlagVerbose bool // --verbose/-V
	FlagQuiet   bool // --quiet/-q
	FlagJSON    bool // for CI
)

func ConfigureLoggerFromFlags() {
	var out io.Writer = os.Stdout
	level := "info"
	switch {
	case FlagQuiet:
		level = "error"
	case FlagVerbose:
		level = "debug"
	}

	Configure(Options{
		Level: level,
		JSON:  FlagJSON,
		Out:   out,
	})
}
