package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"winpick/internal/source"
)

// ErrInvalidCount is returned when the range is empty or negative
var ErrInvalidCount = errors.New("count must be at least 1")

// NewRangeCommand creates the rangepick command. It offers the integers
// start..start+count-1 without ever holding them in memory.
func NewRangeCommand() *cobra.Command {
	opts := &Options{}
	var count, start int

	cmd := &cobra.Command{
		Use:           "rangepick",
		Short:         "Pick a number from a computed range",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return ErrInvalidCount
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

			src := source.FromFunc(count, func(i int) string { return strconv.Itoa(start + i) }, nil, matcher)
			p, err := s.prompt(src)
			if err != nil {
				return err
			}

			answer, err := run(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printAnswer(cmd.OutOrStdout(), answer, opts.PrintIndex)
		},
	}
	opts.Bind(cmd)
	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of values in the range")
	cmd.Flags().IntVar(&start, "start", 0, "first value of the range")

	return cmd
}
