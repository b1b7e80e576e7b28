// Package logger builds *slog.Logger instances for formguard services and
// provides attribute constructors that keep validation log records uniform.
//
// New takes functional options selecting the output format (json or text),
// the minimum level, static attributes and context extractors. Extractors run
// on every record, so request-scoped values such as a session id stored in a
// context.Context are attached automatically:
//
//	log := logger.New(
//	    logger.WithService("signup-form"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.WarnContext(ctx, "preflight failed",
//	    logger.Component("validator"),
//	    logger.ValidationErrors(verrs.Map()),
//	)
//
// Helpers that wrap optional values (Error, SessionID) return an empty
// slog.Attr for nil or empty input, which slog drops.
package logger
