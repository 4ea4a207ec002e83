package g3cmd

import (
	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/g3"
)

func newCmdFiles() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "file helpers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "exists <path>",
			Short: "report if the path exists and passes the traversal checks",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render(cmd, g3.Files().DoesExist(args[0]))
			},
		},
		&cobra.Command{
			Use:   "lines <path>",
			Short: "count the lines of the file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render(cmd, g3.Files().NumberOfLines(args[0]))
			},
		},
	)
	return cmd
}
