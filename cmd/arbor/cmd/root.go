// Package cmd implements the arbor CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (dump, serve, version).
package cmd

import (
	"fmt"
	"io"
	"os"
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
	Name:  "arbor",
	Short: "arbor - widget tree inspection",
	Long: `arbor mounts a widget tree, runs its passes and prints the result.

Use "arbor <command> --help" for more information about a command.`,
	Usage: "arbor <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Output streams for the running command.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments, writing to out and errOut.
func Execute(args []string, out, errOut io.Writer) error {
	stdout, stderr = out, errOut

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version":
		return runVersion(nil)
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
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
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  NO_COLOR             Disable colored output when dump.color is auto")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  arbor dump                  Print the demo tree for the current project")
	fmt.Fprintln(stdout, "  arbor dump --format yaml    Print the tree as YAML")
	fmt.Fprintln(stdout, "  arbor dump --click 3        Click the demo button three times first")
	fmt.Fprintln(stdout, "  arbor serve --addr :9321    Inspect the demo tree over HTTP")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
