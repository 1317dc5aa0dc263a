package bootstrap

import "context"

// AuditLog is one operator-visible event: server lifecycle, degraded
// dependencies, forced shutdowns.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
