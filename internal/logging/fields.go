package logging

import "log/slog"

// Canonical field names shared across the service so log lines stay
// queryable no matter which package emits them.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldQuery      = "query"
	FieldClientIP   = "client_ip"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldProvider   = "provider"
	FieldMatchID    = "match_id"
)

// WithCommon appends service/version attributes when they are set.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
