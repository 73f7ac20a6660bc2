package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type surfaced by HTTP handlers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Erro interno do servidor",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Payload inválido",
	}
}

func ErrValidation(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  "Requisição inválida",
	}
}

// Case lookup errors
func ErrCaseNumberRequired() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Número do processo é obrigatório",
	}
}

func ErrCaseLookupFailed(caseNumber string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CASE_LOOKUP_FAILED,
		Message:  "Erro ao consultar processo",
	}.WithDetail("numero_processo", caseNumber)
}

func ErrUpstreamMalformed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_MALFORMED,
		Message:  "Resposta inesperada do serviço externo",
	}.WithDetail("service", service)
}

func ErrNoActiveCase() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_NO_ACTIVE_CASE,
		Message:  "Nenhum processo consultado nesta sessão",
	}
}

// Transcription errors
func ErrDocumentRequired() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Documento é obrigatório",
	}
}

func ErrVideoNotFound(documentID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_VIDEO_NOT_FOUND,
		Message:  "Vídeo não encontrado",
	}.WithDetail("documento", documentID)
}

func ErrTranscriptionFailed(documentID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Erro ao transcrever vídeo",
	}.WithDetail("documento", documentID)
}

func ErrTranscriptionEmpty(documentID string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_EMPTY,
		Message:  "Erro ao transcrever vídeo",
	}.WithDetail("documento", documentID)
}

func ErrTranscriptMissing() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_MISSING,
		Message:  "Nenhuma transcrição encontrada",
	}
}

// SOLAR errors
func ErrSolarSubmissionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SOLAR_SUBMISSION_FAILED,
		Message:  "Erro ao enviar ao SOLAR",
	}
}

// Session errors
func ErrSessionFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SESSION_FAILED,
		Message:  fmt.Sprintf("Falha na sessão: %s", operation),
	}
}

func ErrCaseChanged(documentID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_CASE_CHANGED,
		Message:  "O processo consultado mudou durante a transcrição",
	}.WithDetail("documento", documentID)
}
