// Package validator checks untrusted form input field by field and collects
// the names of fields that failed, grouped by category.
//
// A Validator lives for one validation session, conventionally one request.
// Callers invoke checks explicitly, in whatever order their form logic needs.
// Every check inspects one value, appends the field name to its category when
// the value is rejected, and returns a bool so callers can short-circuit:
//
//	v := validator.New()
//	v.Required(name, "name")
//	v.Length(name, "name", 50, 2)
//	if v.Required(email, "email") {
//	    v.Mail(email, "email")
//	}
//	v.InArray(lang, "lang", []string{"go", "php", "js"})
//	v.Date(birthday, "birthday") // 2018/05/15, 2018-05-15 or 2018年05月15日
//
//	if errs := v.Errors(); !errs.IsEmpty() {
//	    render(errs.Map()) // {"require": ["name"], "mail": ["email"]}
//	}
//
// # Categories
//
// The set of categories is closed: encoding, null, require, length, intType,
// range, date, regex, mail and inArray. Each is always present in Errors; a
// category without failures is an empty list. Entries keep invocation order
// and are never removed, except by Reset.
//
// # Preflight
//
// Nothing is scanned implicitly. Preflight (or CheckEncoding and CheckNull)
// inspects whole key/value collections for text that is invalid in the
// configured charset and for embedded NUL bytes. Middleware does this for
// every HTTP request and stores the Validator in the request context:
//
//	r.Use(validator.Middleware(cfg, log))
//	...
//	v, _ := validator.FromContext(r.Context())
//
// # Charsets
//
// Character counting and encoding validity follow the Validator's charset,
// UTF-8 by default. Any WHATWG label (Shift_JIS, EUC-JP, windows-1252, ...) can
// be used via WithEncoding or NewWithEncoding.
//
// # Errors
//
// Rejected input never panics; it is reported through the bool result and the
// collection. Caller bugs do panic: Length and Range with min > max panic
// with *BoundsError (wrapping ErrInvertedBounds), and WithEncoding panics on
// an unknown label. A Regex pattern that does not compile fails the field.
//
// Errors implements error and matches ErrValidationFailed with errors.Is.
//
// A Validator is not safe for concurrent use.
package validator
