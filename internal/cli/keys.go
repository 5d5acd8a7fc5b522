package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"winpick/internal/ui"
	"winpick/internal/ui/input"
)

func newKeysCommand() *cobra.Command {
	var vim bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ui.NewKeysRenderer(input.DefaultKeyMap().ForConfig(vim), input.DefaultEditKeyMap()).Render()

			if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return ui.ShowKeysInPager(content)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
			return err
		},
	}
	cmd.Flags().BoolVar(&vim, "vim", false, "include the vim bindings")
	return cmd
}
