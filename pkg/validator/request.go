package validator

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// SourcesFromRequest collects the query, form and cookie data of r for
// Preflight. The body is parsed with ParseMultipartForm for multipart
// requests and ParseForm otherwise; maxMemory bounds the multipart parse.
// Form holds body values only, not the query string. A malformed query
// string never fails the call; its problems are left to the preflight scans.
func SourcesFromRequest(r *http.Request, maxMemory int64) (Sources, error) {
	src := Sources{
		Query:   r.URL.Query(),
		Cookies: rawCookies(r.Header.Values("Cookie")),
	}

	if err := parseBody(r, maxMemory); err != nil {
		return src, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	// PostForm already includes multipart text values.
	form := make(url.Values, len(r.PostForm))
	for k, vals := range r.PostForm {
		form[k] = append([]string(nil), vals...)
	}
	src.Form = form

	return src, nil
}

// parseBody parses the body on a clone of r without its query string, since
// ParseForm also fails on a malformed query. The parsed PostForm and
// MultipartForm are copied back to r, so later FormValue calls on r do not
// read the body again.
func parseBody(r *http.Request, maxMemory int64) error {
	body := r.Clone(r.Context())
	body.URL.RawQuery = ""

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if mediaType == "multipart/form-data" {
		err = body.ParseMultipartForm(maxMemory)
		if errors.Is(err, http.ErrNotMultipart) {
			err = nil
		}
	} else {
		err = body.ParseForm()
	}

	r.PostForm = body.PostForm
	r.MultipartForm = body.MultipartForm
	return err
}

// rawCookies splits Cookie headers without the byte filtering of
// http.Request.Cookies, which silently drops values containing control or
// non-ASCII bytes. Those are exactly the values the scans must see.
func rawCookies(lines []string) map[string][]string {
	out := make(map[string][]string)
	for _, line := range lines {
		for part := range strings.SplitSeq(line, ";") {
			name, value, _ := strings.Cut(strings.TrimSpace(part), "=")
			if name == "" {
				continue
			}
			if len(value) > 1 && value[0] == '"' && value[len(value)-1] == '"' {
				value = value[1 : len(value)-1]
			}
			out[name] = append(out[name], value)
		}
	}
	return out
}
