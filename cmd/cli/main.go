package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/tfsheet/internal/app"
	"github.com/vk/tfsheet/internal/cli"
)

// main is the entrypoint for the tfsheet application.
func main() {
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	tfsheetApp, err := app.New(logW, appConfig)
	if err != nil {
		return err
	}
	return tfsheetApp.Run(context.Background())
}
