package validator

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// RequestIDHeader is reused as the validation session id when present.
const RequestIDHeader = "X-Request-ID"

const maxSessionIDLength = 128

var sessionIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware gives every request its own Validator, runs the preflight scans
// over the request's query, form and cookie data, and stores the Validator in
// the request context for handlers to continue with field checks.
//
// The session id is taken from X-Request-ID when it is well formed and
// generated otherwise. Failed scans are logged at warn level; with
// cfg.RejectInvalid the request is answered with 400 instead of reaching
// next. A body that cannot be parsed is always answered with 400; a malformed
// query string is only reported by the scans. Multipart temp files are
// removed once next returns.
//
// Panics if cfg.Encoding is not a known encoding label.
func Middleware(cfg Config, log *slog.Logger) func(http.Handler) http.Handler {
	cs, err := LookupCharset(cfg.Encoding)
	if err != nil {
		panic(err)
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("validator"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(RequestIDHeader)
			if !isValidSessionID(sessionID) {
				sessionID = uuid.New().String()
			}
			ctx := withSessionID(r.Context(), sessionID)

			src, err := SourcesFromRequest(r, cfg.MaxFormMemory)
			if r.MultipartForm != nil {
				defer func() { _ = r.MultipartForm.RemoveAll() }()
			}
			if err != nil {
				log.WarnContext(ctx, "cannot read request data",
					logger.SessionID(sessionID),
					logger.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}

			v := New(WithCharset(cs))
			if !v.Preflight(src) {
				log.WarnContext(ctx, "preflight scan failed",
					logger.SessionID(sessionID),
					logger.ValidationErrors(v.errors.Map()),
				)
				if cfg.RejectInvalid {
					http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithContext(ctx, v)))
		})
	}
}

func isValidSessionID(id string) bool {
	if id == "" || len(id) > maxSessionIDLength {
		return false
	}
	return sessionIDRegex.MatchString(id)
}
