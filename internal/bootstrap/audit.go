package bootstrap

import "context"

// AuditLog is one operational audit event (startup, shutdown, config
// changes). Business events stay in the request logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
