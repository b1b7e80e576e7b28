package validator

import "regexp"

// Local part, "@", then dot-separated labels with at least one dot.
var mailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)+$")

// Mail fails with Mail unless value is syntactically an email address whose
// domain contains at least one dot. No DNS or mailbox lookup is made.
func (v *Validator) Mail(value, field string) bool {
	if !mailRegex.MatchString(value) {
		return v.fail(Mail, field)
	}
	return true
}
