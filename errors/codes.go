package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_VALIDATION       ErrorCode = 1004

	// Case lookup
	ErrorCode_CASE_LOOKUP_FAILED ErrorCode = 2000
	ErrorCode_UPSTREAM_MALFORMED ErrorCode = 2001
	ErrorCode_NO_ACTIVE_CASE     ErrorCode = 2002
	ErrorCode_VIDEO_NOT_FOUND    ErrorCode = 2003

	// Transcription
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_TRANSCRIPTION_EMPTY  ErrorCode = 3001
	ErrorCode_TRANSCRIPT_MISSING   ErrorCode = 3002

	// SOLAR
	ErrorCode_SOLAR_SUBMISSION_FAILED ErrorCode = 4000

	// Session
	ErrorCode_SESSION_FAILED ErrorCode = 5000
	ErrorCode_CASE_CHANGED   ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_VALIDATION:              "VALIDATION",
	ErrorCode_CASE_LOOKUP_FAILED:      "CASE_LOOKUP_FAILED",
	ErrorCode_UPSTREAM_MALFORMED:      "UPSTREAM_MALFORMED",
	ErrorCode_NO_ACTIVE_CASE:          "NO_ACTIVE_CASE",
	ErrorCode_VIDEO_NOT_FOUND:         "VIDEO_NOT_FOUND",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIPTION_EMPTY:     "TRANSCRIPTION_EMPTY",
	ErrorCode_TRANSCRIPT_MISSING:      "TRANSCRIPT_MISSING",
	ErrorCode_SOLAR_SUBMISSION_FAILED: "SOLAR_SUBMISSION_FAILED",
	ErrorCode_SESSION_FAILED:          "SESSION_FAILED",
	ErrorCode_CASE_CHANGED:            "CASE_CHANGED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
