package apperr

type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeInvalidRequest    Code = "INVALID_REQUEST"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	CodeStoreUnavailable  Code = "STORE_UNAVAILABLE"
)
