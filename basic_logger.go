package tracing

import "go.uber.org/zap"

func newNoopLogger() *zap.Logger {
	return zap.NewNop()
}

// scopeFields renders a key as structured log fields.
func scopeFields(k TracerKey) []zap.Field {
	fields := []zap.Field{zap.String("scope", k.Name)}
	if k.Versioned {
		fields = append(fields, zap.String("version", k.Version))
	}
	return fields
}
