package main

import (
	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/cardformat"
	"github.com/muurk/inputshowcase/internal/contactformat"
	"github.com/muurk/inputshowcase/internal/forms"
	"github.com/muurk/inputshowcase/internal/ui"
)

// validator describes one validate subcommand. check receives the raw input
// and returns the normalized value it judged plus any problems found.
type validator struct {
	use   string
	short string
	field string
	hints []string
	check func(raw string) (string, []error)
}

var validators = []validator{
	{
		use:   "card",
		short: "Check a card number is complete and passes the Luhn checksum",
		field: "Card Number",
		hints: []string{"Card numbers have 16 digits", "A checksum failure is reported as a warning only"},
		check: func(raw string) (string, []error) {
			v := cardformat.FormatCardNumber(raw)
			switch {
			case !cardformat.IsCompleteCardNumber(v):
				return v, []error{forms.NewFormatError("Card Number", "please enter all 16 digits")}
			case !cardformat.PassesLuhn(v):
				return v, []error{forms.NewWarning("Card Number", "card number failed checksum")}
			}
			return v, nil
		},
	},
	{
		use:   "expiry",
		short: "Check an expiry date is a valid MM/YY",
		field: "Expiry Date",
		hints: []string{"Use MM/YY with a month from 01 to 12"},
		check: func(raw string) (string, []error) {
			v := cardformat.FormatExpiry(raw)
			switch {
			case len(v) != cardformat.ExpiryLength:
				return v, []error{forms.NewFormatError("Expiry Date", "use MM/YY")}
			case !cardformat.IsValidExpiry(v):
				return v, []error{forms.NewFormatError("Expiry Date", "invalid expiry date")}
			}
			return v, nil
		},
	},
	{
		use:   "cvv",
		short: "Check a CVV has three or four digits",
		field: "CVV",
		check: func(raw string) (string, []error) {
			v := cardformat.TruncateCVV(raw)
			if !cardformat.IsValidCVV(v) {
				return v, []error{forms.NewFormatError("CVV", "must be 3 or 4 digits")}
			}
			return v, nil
		},
	},
	{
		use:   "email",
		short: "Check an email address",
		field: "Email",
		check: func(raw string) (string, []error) {
			if raw == "" || !contactformat.IsValidEmail(raw) {
				return raw, []error{forms.NewFormatError("Email", "invalid email format")}
			}
			return raw, nil
		},
	},
	{
		use:   "website",
		short: "Check a website starts with http:// or https://",
		field: "Website",
		check: func(raw string) (string, []error) {
			if raw == "" || !contactformat.IsValidWebsite(raw) {
				return raw, []error{forms.NewFormatError("Website", "website should start with http:// or https://")}
			}
			return raw, nil
		},
	},
	{
		use:   "username",
		short: "Check a username is 3-20 letters, digits or underscores",
		field: "Username",
		check: func(raw string) (string, []error) {
			if !contactformat.IsValidUsername(raw) {
				return raw, []error{forms.NewFormatError("Username", "must be 3-20 characters (letters, numbers, underscore)")}
			}
			return raw, nil
		},
	},
	{
		use:   "phone",
		short: "Check a phone number has all ten digits",
		field: "Phone Number",
		check: func(raw string) (string, []error) {
			v := contactformat.FormatPhone(raw)
			if v == "" || !contactformat.IsCompletePhone(v) {
				return v, []error{forms.NewFormatError("Phone Number", "please enter complete phone number")}
			}
			return v, nil
		},
	},
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate input the way the showcase forms do",
		Long: `Validate a single value with the rules the showcase forms use on submit.

The command exits with status 1 when the value is invalid. Warnings, such as
a card number failing its checksum, are printed but do not fail the command.`,
		Example: `  inputshowcase validate card "4111 1111 1111 1111"
  inputshowcase validate expiry 13/27
  inputshowcase validate email ada@example.com`,
	}

	for _, v := range validators {
		validateCmd.AddCommand(newValidateSubCmd(opts, v))
	}
	return validateCmd
}

func newValidateSubCmd(opts *rootOptions, v validator) *cobra.Command {
	return &cobra.Command{
		Use:          v.use + " [input]",
		Short:        v.short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			value, errs := v.check(raw)
			warnings, critical := forms.SeparateWarningsAndErrors(errs)

			p := newPrinter(cmd, opts)
			p.PrintHeader("validate "+v.use, cmd.CommandPath(), ui.Detail{Key: "Input", Value: raw})

			switch {
			case len(critical) > 0:
				p.PrintFailure("Invalid "+v.field, critical, v.hints...)
				return errInvalid
			case len(warnings) > 0:
				details := []ui.Detail{{Key: v.field, Value: value}}
				for _, w := range warnings {
					details = append(details, ui.Detail{Key: "Warning", Value: w.Error()})
				}
				p.PrintWarning("Valid "+v.field+" with warnings", details...)
			default:
				p.PrintSuccess("Valid "+v.field, ui.Detail{Key: v.field, Value: value})
			}
			return nil
		},
	}
}
