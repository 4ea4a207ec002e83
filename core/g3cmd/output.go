package g3cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	formatFlag = "text"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
)

// render writes v to the command output, as indented json with
// --format json, else as text.
func render(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		b, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	s, err := text(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func text(v any) (string, error) {
	switch o := v.(type) {
	case nil:
		return "null", nil
	case string:
		return o, nil
	case bool:
		if o {
			return green("true"), nil
		}
		return red("false"), nil
	case []string:
		return strings.Join(o, "\n"), nil
	case fmt.Stringer:
		return o.String(), nil
	case int, int64, float64:
		return fmt.Sprint(o), nil
	default:
		b, err := json.Marshal(o)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
