package response

// Business codes, aligned with HTTP semantics. The engine always
// answers 200; the envelope carries the real outcome.
const (
	CodeOK             = 0
	CodeBadRequest     = 400
	CodeUnauthorized   = 401
	CodeForbidden      = 403
	CodeNotFound       = 404
	CodeConflict       = 409
	CodeServerError    = 500
	CodeNotImplemented = 501
)

var CodeMsgMap = map[int]string{
	CodeOK:             "OK",
	CodeBadRequest:     "Bad Request",
	CodeUnauthorized:   "Unauthorized",
	CodeForbidden:      "Forbidden",
	CodeNotFound:       "Not Found",
	CodeConflict:       "Conflict",
	CodeServerError:    "Internal Server Error",
	CodeNotImplemented: "Not Implemented",
}
