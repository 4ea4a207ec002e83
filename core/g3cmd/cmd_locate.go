package g3cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/locator"
	"github.com/goodglamm/g3util/util/file"
	"github.com/goodglamm/g3util/util/stringslice"
)

type (
	CmdLocate struct {
		Namespaces []string
		Load       bool
	}

	locateItem struct {
		Prefix string `json:"prefix"`
		Path   string `json:"path"`
		Exists bool   `json:"exists"`
		Loaded bool   `json:"loaded,omitempty"`
	}
)

func newCmdLocate() *cobra.Command {
	var options CmdLocate
	cmd := &cobra.Command{
		Use:   "locate <symbol>",
		Short: "show the file paths a namespaced symbol maps to",
		Long:  "Show the file path of the symbol for each registered namespace whose prefix matches. Namespaces are read from the locator.namespaces configuration and the --namespace flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args[0])
		},
	}
	cmd.Flags().StringArrayVar(&options.Namespaces, "namespace", nil, "a prefix=dir namespace registration, appended to the configured ones")
	cmd.Flags().BoolVar(&options.Load, "load", false, "load the symbol through the namespaces chain")
	return cmd
}

func (t *CmdLocate) chain() (*locator.Chain, []*locator.T, error) {
	chain, err := locator.NewChain()
	if err != nil {
		return nil, nil, err
	}
	var l []*locator.T
	register := func(prefix, dir string) error {
		loc, err := chain.Register(prefix, dir)
		if err != nil {
			return err
		}
		l = append(l, loc)
		return nil
	}
	for _, ns := range cfg.Locator.Namespaces {
		if err := register(ns.Prefix, ns.Dir); err != nil {
			return nil, nil, err
		}
	}
	for _, s := range t.Namespaces {
		prefix, dir, ok := strings.Cut(s, "=")
		if !ok {
			return nil, nil, fmt.Errorf("invalid namespace %q: expected prefix=dir", s)
		}
		if err := register(prefix, dir); err != nil {
			return nil, nil, err
		}
	}
	return chain, l, nil
}

func (t *CmdLocate) Run(cmd *cobra.Command, symbol string) error {
	chain, locators, err := t.chain()
	if err != nil {
		return err
	}
	items := make([]locateItem, 0)
	for _, loc := range locators {
		p, ok := loc.Path(symbol)
		if !ok {
			continue
		}
		items = append(items, locateItem{Prefix: loc.Prefix(), Path: p, Exists: file.DoesExist(p)})
	}
	if t.Load {
		if _, err := chain.Autoload(symbol); err != nil {
			return err
		}
		loaded := chain.Loaded()
		for i := range items {
			items[i].Loaded = stringslice.Has(items[i].Path, loaded)
		}
	}
	if formatFlag == "json" {
		return render(cmd, items)
	}
	if len(items) == 0 {
		return fmt.Errorf("%s: no matching namespace", symbol)
	}
	for _, item := range items {
		state := red("missing")
		if item.Exists {
			state = green("exists")
		}
		if item.Loaded {
			state += " " + blue("loaded")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", item.Path, state)
	}
	return nil
}
