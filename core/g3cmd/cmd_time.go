package g3cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/g3"
	"github.com/goodglamm/g3util/util/converters"
)

func newCmdTime() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "time helpers",
	}
	cmd.AddCommand(newCmdTimeDiff())
	return cmd
}

func newCmdTimeDiff() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> [<to>]",
		Short: "display the difference between two unix timestamps in words",
		Long:  "Display the difference between two unix timestamps in words. The default <to> is now.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := converters.Num.ToInt64(args[0])
			if err != nil {
				return err
			}
			to := time.Now().Unix()
			if len(args) > 1 {
				if to, err = converters.Num.ToInt64(args[1]); err != nil {
					return err
				}
			}
			s, err := g3.Time().HumanReadableDiff(from, to)
			if err != nil {
				return err
			}
			return render(cmd, s)
		},
	}
}
