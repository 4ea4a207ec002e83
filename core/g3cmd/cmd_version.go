package g3cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/g3"
)

type (
	CmdVersion struct {
		Check string
	}
)

func newCmdVersion() *cobra.Command {
	var options CmdVersion
	cmd := &cobra.Command{
		Use:   "version",
		Short: "display the utilities version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd)
		},
	}
	cmd.Flags().StringVar(&options.Check, "check", "", "exit with error if the version does not match the constraint, like \">= 0.1-alpha\"")
	return cmd
}

func (t *CmdVersion) Run(cmd *cobra.Command) error {
	if t.Check == "" {
		return render(cmd, g3.Version)
	}
	ok, err := g3.Satisfies(t.Check)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("version %s does not satisfy %s", g3.Version, t.Check)
	}
	return render(cmd, ok)
}
