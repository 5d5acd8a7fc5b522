package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"winpick/internal/config"
)

// Options holds the flags shared by the pick commands.
// Flags the user did not set leave the config file values alone.
type Options struct {
	ConfigPath    string
	LogPath       string
	Message       string
	HelpMessage   string
	VimMode       bool
	PageSize      int
	Cursor        int
	Filter        string
	Match         string
	CaseSensitive bool
	NoCache       bool
	PrintIndex    bool
}

// DefaultLogPath returns the log file used when --log is not given
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "winpick.log")
}

// Bind registers the flags on cmd
func (o *Options) Bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.ConfigPath, "config", "", "config file (default is the user config dir)")
	flags.StringVar(&o.LogPath, "log", DefaultLogPath(), "log file")
	flags.StringVarP(&o.Message, "message", "m", config.DefaultMessage, "prompt message")
	flags.StringVar(&o.HelpMessage, "help-message", "", "help line shown under the options")
	flags.BoolVar(&o.VimMode, "vim", false, "use j/k to move")
	flags.IntVarP(&o.PageSize, "page-size", "n", config.DefaultPageSize, "number of visible options")
	flags.IntVar(&o.Cursor, "cursor", 0, "index of the option highlighted at start")
	flags.StringVarP(&o.Filter, "filter", "f", "", "initial filter text")
	flags.StringVar(&o.Match, "match", "fuzzy", "matching algorithm (fuzzy or substring)")
	flags.BoolVar(&o.CaseSensitive, "case-sensitive", false, "match case when filtering")
	flags.BoolVar(&o.NoCache, "no-cache", false, "do not cache fetched windows")
	flags.BoolVar(&o.PrintIndex, "index", false, "print the index of the chosen option instead of its text")
}

// Apply copies the flags the user set onto cfg and validates the result
func (o *Options) Apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("message") {
		cfg.Prompt.Message = o.Message
	}
	if flags.Changed("help-message") {
		cfg.Prompt.HelpMessage = o.HelpMessage
	}
	if flags.Changed("vim") {
		cfg.Select.VimMode = o.VimMode
	}
	if flags.Changed("page-size") {
		cfg.Select.PageSize = o.PageSize
	}
	if flags.Changed("cursor") {
		cfg.Select.StartingCursor = o.Cursor
	}
	if flags.Changed("filter") {
		cfg.Select.StartingFilter = o.Filter
	}
	if flags.Changed("match") {
		cfg.Matching.Algorithm = o.Match
	}
	if flags.Changed("case-sensitive") {
		cfg.Matching.CaseSensitive = o.CaseSensitive
	}
	if o.NoCache {
		cfg.Cache.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
