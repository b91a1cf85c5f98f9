package main

import (
	"context"
	"os"

	"github.com/agbru/bigdemo/internal/app"
	"github.com/agbru/bigdemo/internal/cli"
	apperrors "github.com/agbru/bigdemo/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		cli.DisplayError(os.Stderr, err)
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
