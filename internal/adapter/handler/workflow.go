package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/defensoria-df/solar-transcricao/errors"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/dto/common"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/dto/workflow"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/presenter"
	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/internal/usecase/transcription"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
)

// Workflow handles the lookup -> transcribe -> submit endpoints
type Workflow struct {
	svc    transcription.Service
	cookie SessionCookie
	logger *zap.Logger
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(svc transcription.Service, cfg config.SessionConfig, logger *zap.Logger) *Workflow {
	return &Workflow{
		svc:    svc,
		cookie: NewSessionCookie(cfg),
		logger: logger,
	}
}

// ConsultarProcesso looks up the videos of a case
// @Summary      Consultar processo
// @Description  Lists the videos of a case and makes it the active case of the caller's session
// @Tags         Workflow
// @Accept       json
// @Produce      json
// @Param        request  body      workflow.LookupCaseRequest   true  "Número do processo"
// @Success      200      {object}  workflow.LookupCaseResponse
// @Failure      400      {object}  common.ErrorResponse  "Número do processo ausente ou inválido"
// @Failure      502      {object}  common.ErrorResponse  "Falha no serviço de consulta"
// @Router       /consultar-processo [post]
func (h *Workflow) ConsultarProcesso(c echo.Context) error {
	var req workflow.LookupCaseRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.Normalize()
	if req.CaseNumber == "" {
		return HandleError(h.logger, c, errors.ErrCaseNumberRequired())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err).WithDetail("field", "numero_processo"))
	}

	sessionID := h.cookie.Ensure(c)
	out, err := h.svc.LookupCase(c.Request().Context(), sessionID, req.CaseNumber)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.CaseNumber, ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToLookupCaseResponse(out))
}

// Transcrever transcribes a video of the active case
// @Summary      Transcrever vídeo
// @Description  Transcribes one video of the active case and stores the formatted transcript in the session
// @Tags         Workflow
// @Accept       json
// @Produce      json
// @Param        request  body      workflow.TranscribeRequest   true  "Documento do vídeo"
// @Success      200      {object}  workflow.TranscribeResponse
// @Failure      400      {object}  common.ErrorResponse  "Documento ausente ou nenhum processo consultado"
// @Failure      404      {object}  common.ErrorResponse  "Vídeo não encontrado"
// @Failure      409      {object}  common.ErrorResponse  "Outro processo foi consultado durante a transcrição"
// @Failure      500      {object}  common.ErrorResponse  "Erro ao transcrever vídeo"
// @Router       /transcrever [post]
func (h *Workflow) Transcrever(c echo.Context) error {
	var req workflow.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.Normalize()
	if req.DocumentID == "" {
		return HandleError(h.logger, c, errors.ErrDocumentRequired())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err).WithDetail("field", "documento"))
	}

	sessionID := h.cookie.Ensure(c)
	documentID := req.DocumentID.String()
	out, err := h.svc.Transcribe(c.Request().Context(), sessionID, documentID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", documentID))
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscribeResponse(out))
}

// EnviarSolar submits the stored transcript to SOLAR
// @Summary      Enviar ao SOLAR
// @Description  Forwards the transcript stored in the caller's session to SOLAR
// @Tags         Workflow
// @Produce      json
// @Success      200  {object}  workflow.SubmitResponse
// @Failure      400  {object}  common.ErrorResponse  "Nenhuma transcrição encontrada"
// @Failure      500  {object}  common.ErrorResponse  "Erro ao enviar ao SOLAR"
// @Router       /enviar-solar [post]
func (h *Workflow) EnviarSolar(c echo.Context) error {
	sessionID := h.cookie.Ensure(c)
	out, err := h.svc.Submit(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToSubmitResponse(out))
}

// GetSessao returns the caller's workflow state
// @Summary      Estado da sessão
// @Tags         Sessão
// @Produce      json
// @Success      200  {object}  workflow.SessionResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /sessao [get]
func (h *Workflow) GetSessao(c echo.Context) error {
	sessionID, ok := h.cookie.Read(c)
	if !ok {
		return HandleSuccess(h.logger, c, presenter.ToSessionResponse(nil))
	}
	session, err := h.svc.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(session))
}

// DeleteSessao forgets the caller's workflow state
// @Summary      Limpar sessão
// @Tags         Sessão
// @Produce      json
// @Success      200  {object}  common.MessageResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /sessao [delete]
func (h *Workflow) DeleteSessao(c echo.Context) error {
	if sessionID, ok := h.cookie.Read(c); ok {
		if err := h.svc.ResetSession(c.Request().Context(), sessionID); err != nil {
			return HandleError(h.logger, c, toAppError(err, "", ""))
		}
	}
	h.cookie.Clear(c)
	return HandleSuccess(h.logger, c, common.MessageResponse{Success: true, Message: "Sessão encerrada"})
}

// SessionCookie issues and reads the workflow session cookie
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

// NewSessionCookie builds the cookie settings from configuration
func NewSessionCookie(cfg config.SessionConfig) SessionCookie {
	return SessionCookie{
		Name:   cfg.CookieName,
		MaxAge: int(cfg.TTL.Seconds()),
		Secure: cfg.Secure,
	}
}

// Read returns the session id carried by the request, if it is well formed
func (sc SessionCookie) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(sc.Name)
	if err != nil || !entities.IsValidSessionID(cookie.Value) {
		return "", false
	}
	return cookie.Value, true
}

// Ensure returns the request's session id, issuing a new one when missing or malformed.
// The cookie is refreshed on every call so its expiry follows the store TTL.
func (sc SessionCookie) Ensure(c echo.Context) string {
	id, ok := sc.Read(c)
	if !ok {
		id = entities.NewSessionID()
	}
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   sc.MaxAge,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Clear expires the session cookie
func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
	})
}
