package g3cmd

import (
	"fmt"

	"github.com/danwakefield/fnmatch"
	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/core/g3"
)

type (
	CmdDrivers struct {
		Pattern string
	}

	driverItem struct {
		Name string      `json:"name"`
		Mode driver.Mode `json:"mode"`
	}
)

func newCmdDrivers() *cobra.Command {
	var options CmdDrivers
	return &cobra.Command{
		Use:   "drivers [pattern]",
		Short: "list the registered drivers, optionally filtered by a glob pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Pattern = args[0]
			}
			return options.Run(cmd)
		},
	}
}

func (t *CmdDrivers) Run(cmd *cobra.Command) error {
	r, err := g3.Registry()
	if err != nil {
		return err
	}
	items := make([]driverItem, 0)
	for _, name := range r.List() {
		if t.Pattern != "" && !fnmatch.Match(t.Pattern, name, 0) {
			continue
		}
		mode, _ := r.Mode(name)
		items = append(items, driverItem{Name: name, Mode: mode})
	}
	if formatFlag == "json" {
		return render(cmd, items)
	}
	for _, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", item.Name, blue(item.Mode))
	}
	return nil
}
