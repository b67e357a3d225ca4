// Package tui implements the interactive text input showcase.
//
// Each scenario from the home menu opens a screen that exercises one family of
// input behaviour. Built using the Bubble Tea framework, every screen is a
// value-typed model that the AppModel router swaps in and out.
//
// # Screens
//
//   - Purchase: address fields plus card number, expiry and CVV formatting
//   - Profile, Settings, Review, Calendar: generic FormModel screens described by a FormSpec
//   - Social: post composer with hashtag and mention suggestions and a highlighted preview
//   - Search: recent, popular and filtered rows with "did you mean" fallback
//   - Chat: message history in a viewport and a single-line composer
//   - Copy & Paste: clipboard round trips between plain, numeric and multiline fields
//
// All screens render through RenderApplicationContainer and report leaving via
// IsBackRequested, which returns the user to the home menu.
//
// # Usage Example
//
//	reg := config.NewRegistry()
//	app := tui.NewAppModel(reg, tui.ScreenHome)
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Formatting and validation rules live in the cardformat, contactformat,
// posttoken and forms packages; this package only wires them to key events.
package tui
