package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/cardformat"
	"github.com/muurk/inputshowcase/internal/contactformat"
	"github.com/muurk/inputshowcase/internal/ui"
)

// formatter describes one format subcommand
type formatter struct {
	use     string
	short   string
	example string
	apply   func(string) string
}

var formatters = []formatter{
	{
		use:     "card",
		short:   "Group card number digits in blocks of four",
		example: "  inputshowcase format card 4111111111111111\n  echo 4111-1111-1111-1111 | inputshowcase format card",
		apply:   cardformat.FormatCardNumber,
	},
	{
		use:     "expiry",
		short:   "Format an expiry date as MM/YY",
		example: "  inputshowcase format expiry 1227",
		apply:   cardformat.FormatExpiry,
	},
	{
		use:     "cvv",
		short:   "Keep the first four digits of a CVV",
		example: "  inputshowcase format cvv 12345",
		apply:   cardformat.TruncateCVV,
	},
	{
		use:     "phone",
		short:   "Apply the (XXX) XXX-XXXX phone mask",
		example: "  inputshowcase format phone 1234567890",
		apply:   contactformat.FormatPhone,
	},
	{
		use:     "state",
		short:   "Truncate a state code to two characters",
		example: "  inputshowcase format state CAL",
		apply:   contactformat.TruncateState,
	},
	{
		use:     "zip",
		short:   "Truncate a ZIP code to five characters",
		example: "  inputshowcase format zip 940161234",
		apply:   contactformat.TruncateZip,
	},
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Format raw input the way the showcase fields do",
		Long: `Format raw input with the same rules the showcase fields apply on every keystroke.

Input is taken from the arguments, or from stdin when no arguments are given.
In plain mode (or when output is piped) only the formatted value is printed.`,
	}

	for _, f := range formatters {
		formatCmd.AddCommand(newFormatSubCmd(opts, f))
	}
	return formatCmd
}

func newFormatSubCmd(opts *rootOptions, f formatter) *cobra.Command {
	return &cobra.Command{
		Use:     f.use + " [input]",
		Short:   f.short,
		Example: f.example,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			formatted := f.apply(raw)

			p := newPrinter(cmd, opts)
			p.PrintHeader("format "+f.use, cmd.CommandPath(), ui.Detail{Key: "Input", Value: raw})
			p.PrintValue("Formatted "+f.use, formatted,
				ui.Detail{Key: "Length", Value: strconv.Itoa(len([]rune(formatted)))},
			)
			return nil
		},
	}
}
