package models

// ContextKey namespaces values stored on a request context
type ContextKey string

const (
	// RequestIDKey holds the request trace id
	RequestIDKey ContextKey = "request_id"
)
