package g3cmd

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/g3"
	"github.com/goodglamm/g3util/util/converters"
)

type (
	CmdArraysInject struct {
		Position int
	}
	CmdArraysMerge struct{}
	CmdArraysAssoc struct{}
)

func newCmdArrays() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arrays",
		Short: "sequence and ordered mapping helpers",
	}
	cmd.AddCommand(
		newCmdArraysInject(),
		newCmdArraysMerge(),
		newCmdArraysAssoc(),
	)
	return cmd
}

func newCmdArraysInject() *cobra.Command {
	var options CmdArraysInject
	cmd := &cobra.Command{
		Use:   "inject <value> [<item>...]",
		Short: "insert a value in a sequence, before the item at --position",
		Long:  "Insert a value in a sequence, before the item at --position. A position <= 0 or past the end appends the value.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args[0], args[1:])
		},
	}
	cmd.Flags().IntVar(&options.Position, "position", 0, "index of the item to insert before")
	return cmd
}

func (t *CmdArraysInject) Run(cmd *cobra.Command, value string, items []string) error {
	seq := converters.ToAnys(items)
	return render(cmd, g3.Arrays().Inject(converters.ToAny(value), t.Position, seq))
}

func newCmdArraysMerge() *cobra.Command {
	var options CmdArraysMerge
	return &cobra.Command{
		Use:   "merge <json object>...",
		Short: "merge the values of the next objects into the keys of the first",
		Long:  "Merge the values of the next objects into the keys of the first object. Keys absent from the first object are ignored, as are null values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args)
		},
	}
}

func (t *CmdArraysMerge) Run(cmd *cobra.Command, args []string) error {
	maps := make([]*orderedmap.OrderedMap, len(args))
	for i, s := range args {
		m, err := parseOrderedMap(s)
		if err != nil {
			return err
		}
		maps[i] = m
	}
	return render(cmd, g3.Arrays().MergeSelective(maps...))
}

func newCmdArraysAssoc() *cobra.Command {
	var options CmdArraysAssoc
	return &cobra.Command{
		Use:   "assoc <json object or array>",
		Short: "report if the json value has at least one non-numeric key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args[0])
		},
	}
}

func (t *CmdArraysAssoc) Run(cmd *cobra.Command, s string) error {
	m, err := parseOrderedMap(s)
	if err != nil {
		return err
	}
	return render(cmd, g3.Arrays().IsAssociative(m))
}

// parseOrderedMap parses a json object, or a json array whose indexes
// become the keys.
func parseOrderedMap(s string) (*orderedmap.OrderedMap, error) {
	m := orderedmap.New()
	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		var l []any
		if err := json.Unmarshal([]byte(s), &l); err != nil {
			return nil, errors.Wrapf(err, "parse %s", s)
		}
		for i, v := range l {
			m.Set(strconv.Itoa(i), v)
		}
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), m); err != nil {
		return nil, errors.Wrapf(err, "parse %s", s)
	}
	return m, nil
}
