package common

const (
	TraceIDHeader     = "X-Trace-Id"
	ContentTypeHeader = "X-Content-Type"

	AdminSubject = "legalguard-admin"
)
