package main

import (
	"errors"
	"os"

	"github.com/AiYo-Studio/emod-cli/internal/cli"
	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		output.Error(err.Error())
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
