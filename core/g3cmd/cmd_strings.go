package g3cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/core/g3"
	"github.com/goodglamm/g3util/util/converters"
)

type (
	CmdStringsMinutes struct {
		WordsPerMinute int
	}
	CmdStringsReplace struct {
		List bool
	}
)

func newCmdStrings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings",
		Short: "text helpers",
	}
	cmd.AddCommand(
		newCmdStringsFunc("wordcount <text>...", "count the words of the text, markup and shortcodes excluded", func(cmd *cobra.Command, s string) error {
			return render(cmd, g3.Strings().WordCount(s))
		}),
		newCmdStringsMinutes(),
		newCmdStringsReplace(),
		newCmdStringsFunc("key <text>...", "sanitize the text as a key", func(cmd *cobra.Command, s string) error {
			return render(cmd, g3.Strings().SanitizedKey(s))
		}),
		newCmdStringsFunc("empty <text>...", "report if the text is empty or whitespace only", func(cmd *cobra.Command, s string) error {
			return render(cmd, g3.Strings().IsEmpty(s))
		}),
		newCmdStringsFunc("name <text>...", "report if the text is a valid name", func(cmd *cobra.Command, s string) error {
			return render(cmd, g3.Strings().IsName(s))
		}),
		newCmdStringsLinks(),
	)
	return cmd
}

// newCmdStringsFunc returns a command passing its space joined args to fn.
func newCmdStringsFunc(use, short string, fn func(*cobra.Command, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fn(cmd, strings.Join(args, " "))
		},
	}
}

func newCmdStringsMinutes() *cobra.Command {
	var options CmdStringsMinutes
	cmd := &cobra.Command{
		Use:   "minutes <text>...",
		Short: "estimate the minutes needed to read the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("wpm") {
				options.WordsPerMinute = cfg.Strings.WordsPerMinute
			}
			return render(cmd, g3.Strings().MinutesToRead(strings.Join(args, " "), options.WordsPerMinute))
		},
	}
	cmd.Flags().IntVar(&options.WordsPerMinute, "wpm", 0, "reading speed in words per minute (default from strings.words_per_minute)")
	return cmd
}

func newCmdStringsReplace() *cobra.Command {
	var options CmdStringsReplace
	cmd := &cobra.Command{
		Use:   "replace <search> <replace> <subject>",
		Short: "replace the search strings in the subject",
		Long:  "Replace the search strings in the subject. With --list, search and replace are shell-like lists of words, replaced pairwise in order.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args[0], args[1], args[2])
		},
	}
	cmd.Flags().BoolVar(&options.List, "list", false, "split search and replace as shell-like word lists")
	return cmd
}

func (t *CmdStringsReplace) Run(cmd *cobra.Command, search, replace, subject string) error {
	var searchArg, replaceArg any = search, replace
	if t.List {
		l, err := converters.Shlex.ToSlice(search)
		if err != nil {
			return err
		}
		searchArg = l
		if l, err = converters.Shlex.ToSlice(replace); err != nil {
			return err
		}
		replaceArg = l
	}
	s, err := g3.Strings().SearchReplace(searchArg, replaceArg, subject)
	if err != nil {
		return err
	}
	return render(cmd, s)
}

func newCmdStringsLinks() *cobra.Command {
	return &cobra.Command{
		Use:   "links <pattern> <part>...",
		Short: "format the pattern with its parts, keeping only the link markup",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g3.Strings().SanitizedWithLinks(args[0], converters.ToAnys(args[1:])...)
			if err != nil {
				return err
			}
			return render(cmd, s)
		},
	}
}
