// Package sanitizer prepares already validated (or entirely untrusted) text
// for re-display in HTML. It holds no state and never reports errors: every
// helper returns a safe string.
//
//	<input value="{{ sanitizer.Escape(submitted) }}">
//
// Escape covers attribute and text contexts. StripTags removes markup
// altogether for places where only plain text belongs.
package sanitizer
