// Package posttoken tokenizes free-form post text for hashtag and mention
// autocomplete.
//
// A post is split on the ASCII space character only. Tabs and newlines are
// part of a word. Cursor positions are counted in runes so that emoji and
// other multi-byte characters do not shift the word under the cursor.
//
// # Autocomplete Flow
//
// The compose screen calls the package on every keystroke:
//
//	word := posttoken.CurrentWord(text, cursor)
//	if posttoken.ShouldShowSuggestions(word) {
//	    matches := posttoken.FilterSuggestions(hashtags, word)
//	    // render matches ...
//	}
//
// When a suggestion is picked, InsertSuggestion swaps the partial word for the
// full one and returns the new cursor:
//
//	edit := posttoken.InsertSuggestion(text, cursor, word.Text, "Android", "#")
//	// edit.Text == "hello #Android", edit.Cursor == 14
//
// # Highlighting
//
// Highlight returns one Span per space-delimited piece. Joining the span texts
// with single spaces reproduces the input exactly, so callers can style each
// span and re-insert the separators:
//
//	for _, span := range posttoken.Highlight("hi @bob #tag") {
//	    // {hi plain} {@bob mention} {#tag hashtag}
//	}
//
// # Length Limit
//
// MaxPostLength (280) is enforced by the caller through AcceptEdit and
// CanPost. The tokenizer itself places no limit on input length.
package posttoken
