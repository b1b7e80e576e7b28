package validator

import (
	"maps"
	"slices"
	"strings"
)

// Sources holds the ambient request data scanned by Preflight. Each map has
// the shape of url.Values: a key may carry several values.
type Sources struct {
	Query   map[string][]string
	Form    map[string][]string
	Cookies map[string][]string
}

// Preflight runs CheckEncoding and then CheckNull over the query, form and
// cookie data, in that order. It reports whether this call recorded nothing.
// The maps are only read.
func (v *Validator) Preflight(src Sources) bool {
	before := v.errors.Count(Encoding) + v.errors.Count(Null)

	for _, data := range []map[string][]string{src.Query, src.Form, src.Cookies} {
		v.CheckEncoding(data)
		v.CheckNull(data)
	}

	return v.errors.Count(Encoding)+v.errors.Count(Null) == before
}

// CheckEncoding records under Encoding every key with a value that is not
// valid text in the Validator's charset. Keys are visited in sorted order and
// recorded at most once per call.
func (v *Validator) CheckEncoding(data map[string][]string) bool {
	return v.scan(data, Encoding, func(s string) bool {
		return v.charset.Valid(s)
	})
}

// CheckNull records under Null every key with a value containing a NUL byte.
// Keys are visited in sorted order and recorded at most once per call.
func (v *Validator) CheckNull(data map[string][]string) bool {
	return v.scan(data, Null, func(s string) bool {
		return strings.IndexByte(s, 0) < 0
	})
}

func (v *Validator) scan(data map[string][]string, c Category, ok func(string) bool) bool {
	clean := true
	for _, key := range slices.Sorted(maps.Keys(data)) {
		if !slices.ContainsFunc(data[key], func(s string) bool { return !ok(s) }) {
			continue
		}
		clean = v.fail(c, key)
	}
	return clean
}

// StringMap lifts single-valued data into the shape the scans accept.
func StringMap(m map[string]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, val := range m {
		out[k] = []string{val}
	}
	return out
}
