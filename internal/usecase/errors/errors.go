package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Case lookup errors
var (
	ErrLookupFailed      = errors.New("case lookup failed")
	ErrUpstreamMalformed = errors.New("malformed upstream response")
	ErrNoActiveCase      = errors.New("no case looked up in this session")
	ErrVideoNotFound     = errors.New("video not found in session")
)

// Transcription errors
var (
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrTranscriptionEmpty  = errors.New("transcription returned an empty payload")
	ErrTranscriptMissing   = errors.New("no transcript stored in session")
)

// Submission errors
var (
	ErrSubmissionFailed   = errors.New("solar submission failed")
	ErrSubmissionRejected = errors.New("solar submission returned no result")
)

// Session errors
var (
	ErrSessionUnavailable = errors.New("session store unavailable")
	ErrCaseChanged        = errors.New("active case changed during the request")
)
