// Package cli holds the winpick and rangepick commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"winpick/internal/source"
	"winpick/internal/ui"
)

// Exit codes
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

// ErrNoInput is returned when there is neither a file argument nor piped input
var ErrNoInput = errors.New("no options: pass a file or pipe lines on stdin")

// NewRootCommand creates the winpick command
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "winpick [file]",
		Short: "Pick one line from a list in the terminal",
		Long: "winpick shows the lines of a file, or of its standard input, in a filterable list " +
			"and prints the line you pick.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts, args)
		},
	}
	opts.Bind(cmd)

	cmd.AddCommand(newKeysCommand())
	cmd.AddCommand(newConfigCommand())
	return cmd
}

func runPick(cmd *cobra.Command, opts *Options, args []string) error {
	lines, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	matcher, err := s.matcher()
	if err != nil {
		return err
	}

	p, err := s.prompt(source.FromSlice(lines, nil, matcher))
	if err != nil {
		return err
	}

	answer, err := run(cmd.Context(), p)
	if err != nil {
		return err
	}
	return printAnswer(cmd.OutOrStdout(), answer, opts.PrintIndex)
}

// readInput reads options from the file argument or from piped input
func readInput(stdin io.Reader, args []string) ([]string, error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open options file: %w", err)
		}
		defer f.Close()
		return source.ReadLines(f)
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}
	return source.ReadLines(stdin)
}

// Run executes cmd and returns the process exit code
func Run(cmd *cobra.Command) int {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ui.ErrCancelled):
		return ExitCancelled
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
}
