// Command colorring validates ring configurations and renders their
// animation to PNG frames.
package main

import (
	"log"
	"os"

	"github.com/go-drift/colorring/cmd/colorring/cmd"
	"github.com/go-drift/colorring/pkg/errors"
)

func main() {
	errors.SetHandler(&errors.LogHandler{
		Verbose: os.Getenv("COLORRING_DEBUG") != "",
		Logger:  log.New(os.Stderr, "colorring: ", 0),
	})
	if err := cmd.Execute(os.Args[1:]); err != nil {
		cmd.ReportError(err)
		os.Exit(1)
	}
}
