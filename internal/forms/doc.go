// Package forms validates the multi-field screens of the showcase: checkout,
// account settings, profile, review and calendar event.
//
// Each Validate* function returns a slice of errors, empty when the form can be
// submitted. Errors are *FieldError values carrying the field label so that the
// presentation layer can show them next to the right input:
//
//	errs := forms.ValidatePurchase(purchase)
//	warnings, critical := forms.SeparateWarningsAndErrors(errs)
//	if len(critical) > 0 {
//	    fmt.Print(forms.FormatValidationErrors(critical))
//	}
//
// Warnings (ErrTypeWarning) are advisory, e.g. a card number that fails the
// Luhn checksum, and never block submission.
//
// Field-level formatting lives in cardformat and contactformat; this package
// only combines those checks into submit gates.
package forms
