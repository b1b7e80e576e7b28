package validator

import "fmt"

// Validator accumulates check failures for one validation session,
// conventionally one request. It is not safe for concurrent use; every
// request constructs its own.
type Validator struct {
	charset Charset
	errors  Errors
}

// Option configures a Validator.
type Option func(*Validator)

// WithCharset sets the charset used for character counting and encoding
// scans.
func WithCharset(cs Charset) Option {
	return func(v *Validator) { v.charset = cs }
}

// WithEncoding resolves name with LookupCharset and uses it.
// Panics on an unknown name: a misconfigured encoding is a startup bug, not a
// validation failure.
func WithEncoding(name string) Option {
	return func(v *Validator) {
		cs, err := LookupCharset(name)
		if err != nil {
			panic(fmt.Errorf("validator: %w", err))
		}
		v.charset = cs
	}
}

// New creates a Validator with an empty error collection. The charset
// defaults to UTF-8. No ambient data is scanned; call Preflight explicitly.
func New(opts ...Option) *Validator {
	v := &Validator{charset: UTF8}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewWithEncoding is like New with WithEncoding, but returns
// ErrUnknownEncoding instead of panicking.
func NewWithEncoding(name string, opts ...Option) (*Validator, error) {
	cs, err := LookupCharset(name)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithCharset(cs)}, opts...)...), nil
}

// Charset returns the charset used by the encoding check and Length.
func (v *Validator) Charset() Charset {
	return v.charset
}

// Errors returns a snapshot of the accumulated failures.
func (v *Validator) Errors() Errors {
	return v.errors.clone()
}

// Valid reports whether no check has failed since construction or the last
// Reset.
func (v *Validator) Valid() bool {
	return v.errors.IsEmpty()
}

// Err returns nil when valid, otherwise a snapshot of the collection as an
// error.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v.Errors()
}

// Reset discards every recorded failure.
func (v *Validator) Reset() {
	v.errors = Errors{}
}

func (v *Validator) fail(c Category, field string) bool {
	v.errors.add(c, field)
	return false
}
