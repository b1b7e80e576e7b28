package validator

import "regexp"

// Regex fails with Regex unless pattern matches somewhere in value. The
// match is unanchored unless the pattern anchors itself.
//
// The pattern is compiled on each call; use Match with a pre-compiled
// expression on hot paths. A pattern that is not valid RE2 syntax matches
// nothing, so the field is recorded under Regex.
func (v *Validator) Regex(value, field, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return v.fail(Regex, field)
	}
	return v.Match(value, field, re)
}

// Match is Regex for an already compiled expression.
func (v *Validator) Match(value, field string, re *regexp.Regexp) bool {
	if !re.MatchString(value) {
		return v.fail(Regex, field)
	}
	return true
}
