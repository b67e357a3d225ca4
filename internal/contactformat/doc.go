// Package contactformat masks and validates contact fields: phone numbers,
// email addresses, websites, usernames and short address fields.
//
// Functions are pure and never fail. Optional fields (email, website, phone)
// treat the empty string as valid.
package contactformat
