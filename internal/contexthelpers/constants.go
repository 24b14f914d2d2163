package contexthelpers

type contextKey string

const CspNonceContextKey = contextKey("cspNonce")
const CurrentPathContextKey = contextKey("currentPath")
const TraceIDContextKey = contextKey("traceID")
