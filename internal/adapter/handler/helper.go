package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/defensoria-df/solar-transcricao/errors"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/dto/common"
	ucerrors "github.com/defensoria-df/solar-transcricao/internal/usecase/errors"
)

// getRequestID reads the request id set by the RequestID middleware, falling back to the inbound header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if appErr.Timestamp.IsZero() {
			appErr.Timestamp = time.Now().UTC()
		}
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Stringer("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Success:   false,
			Message:   appErr.Message,
			Code:      appErr.Code.String(),
			Info:      info,
			Details:   appErr.Details,
			Timestamp: appErr.Timestamp,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Success:   false,
		Message:   "Erro interno do servidor",
		Code:      errors.ErrorCode_INTERNAL.String(),
		Timestamp: time.Now().UTC(),
	})
}

// toAppError maps pipeline errors to their HTTP representation
func toAppError(err error, caseNumber, documentID string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, ucerrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ucerrors.ErrNoActiveCase):
		return errors.ErrNoActiveCase()
	case stdErrors.Is(err, ucerrors.ErrVideoNotFound):
		return errors.ErrVideoNotFound(documentID)
	case stdErrors.Is(err, ucerrors.ErrLookupFailed):
		return errors.ErrCaseLookupFailed(caseNumber, err)
	case stdErrors.Is(err, ucerrors.ErrUpstreamMalformed):
		service := "consulta"
		if documentID != "" {
			service = "transcricao"
		}
		return errors.ErrUpstreamMalformed(service, err)
	case stdErrors.Is(err, ucerrors.ErrTranscriptionFailed):
		return errors.ErrTranscriptionFailed(documentID, err)
	case stdErrors.Is(err, ucerrors.ErrTranscriptionEmpty):
		return errors.ErrTranscriptionEmpty(documentID)
	case stdErrors.Is(err, ucerrors.ErrTranscriptMissing):
		return errors.ErrTranscriptMissing()
	case stdErrors.Is(err, ucerrors.ErrSubmissionFailed), stdErrors.Is(err, ucerrors.ErrSubmissionRejected):
		return errors.ErrSolarSubmissionFailed(err)
	case stdErrors.Is(err, ucerrors.ErrCaseChanged):
		return errors.ErrCaseChanged(documentID)
	case stdErrors.Is(err, ucerrors.ErrSessionUnavailable):
		return errors.ErrSessionFailed("store", err)
	default:
		return errors.ErrInternal(err)
	}
}
