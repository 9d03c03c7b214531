// Package cmd implements the colorring CLI commands.
//
// A root command dispatches to subcommands (check, render) registered from
// each file's init function.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-drift/colorring/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "colorring",
	Short: "colorring - segmented circular progress rings",
	Long: `colorring checks ring configuration files and renders the ring
animation frame by frame.

Use "colorring <command> --help" for more information about a command.`,
	Usage: "colorring <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout and logger are swapped by tests.
var (
	stdout io.Writer = os.Stdout
	logger           = log.New(os.Stderr, "colorring: ", 0)
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "colorring version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// ReportError logs the error returned by Execute. A structured
// *errors.Error goes through errors.Report, so the installed handler
// prints its kind and config path.
func ReportError(err error) {
	var e *errors.Error
	if stderrors.As(err, &e) {
		errors.Report(e)
		return
	}
	logger.Printf("error: %v", err)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  colorring check ring.yaml                Validate a config file")
	fmt.Fprintln(stdout, "  colorring render ring.yaml --out frames  Write PNG frames")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
