package transcription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/internal/domain/repositories"
	ucerrors "github.com/defensoria-df/solar-transcricao/internal/usecase/errors"
)

// CaseLookup fetches the raw video listing of a case
type CaseLookup interface {
	LookupCase(ctx context.Context, caseNumber string) (any, error)
}

// Transcriber fetches the raw transcription result of a video
type Transcriber interface {
	Transcribe(ctx context.Context, req entities.TranscriptionRequest) (any, error)
}

// Submitter forwards a formatted transcript to SOLAR
type Submitter interface {
	SubmitTranscript(ctx context.Context, transcript string) (any, error)
}

// Service defines the lookup -> transcribe -> submit pipeline.
// Every step reads and writes the caller's workflow session.
type Service interface {
	LookupCase(ctx context.Context, sessionID, caseNumber string) (*LookupOutput, error)
	Transcribe(ctx context.Context, sessionID, documentID string) (*TranscribeOutput, error)
	Submit(ctx context.Context, sessionID string) (*SubmitOutput, error)
	GetSession(ctx context.Context, sessionID string) (*entities.WorkflowSession, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// LookupOutput is the result of a case lookup
type LookupOutput struct {
	CaseNumber string
	Videos     []entities.VideoRef
}

// TranscribeOutput is the result of a transcription
type TranscribeOutput struct {
	Video      entities.VideoRef
	Transcript entities.FormattedTranscript
}

// SubmitOutput is the result of a SOLAR submission
type SubmitOutput struct {
	Video  *entities.VideoRef
	Result any
}

type service struct {
	lookup      CaseLookup
	transcriber Transcriber
	submitter   Submitter
	sessions    repositories.SessionRepository
	links       *LinkBuilder
	logger      *zap.Logger
}

// NewService constructs the pipeline service
func NewService(
	lookup CaseLookup,
	transcriber Transcriber,
	submitter Submitter,
	sessions repositories.SessionRepository,
	links *LinkBuilder,
	logger *zap.Logger,
) Service {
	if links == nil {
		links = defaultLinks
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		lookup:      lookup,
		transcriber: transcriber,
		submitter:   submitter,
		sessions:    sessions,
		links:       links,
		logger:      logger,
	}
}

// LookupCase queries the case videos and makes them the session's active case
func (s *service) LookupCase(ctx context.Context, sessionID, caseNumber string) (*LookupOutput, error) {
	caseNumber = strings.TrimSpace(caseNumber)
	if caseNumber == "" {
		return nil, fmt.Errorf("%w: numero_processo is required", ucerrors.ErrInvalidInput)
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	raw, err := s.lookup.LookupCase(ctx, caseNumber)
	if err != nil {
		s.logger.Error("Erro ao consultar processo",
			zap.String("numero_processo", caseNumber),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrLookupFailed, err)
	}

	videos, err := NormalizeVideos(raw)
	if err != nil {
		s.logger.Warn("unexpected case lookup response",
			zap.String("numero_processo", caseNumber),
			zap.String("shape", fmt.Sprintf("%T", raw)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrUpstreamMalformed, err)
	}

	for i := range videos {
		videos[i] = videos[i].WithLink(s.links.Build(caseNumber, videos[i].DocumentID))
	}

	session.StartCase(caseNumber, videos)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("case looked up",
		zap.String("session_id", sessionID),
		zap.String("numero_processo", caseNumber),
		zap.Int("videos", len(videos)),
	)

	return &LookupOutput{CaseNumber: caseNumber, Videos: videos}, nil
}

// Transcribe transcribes one of the active case's videos and stores the formatted transcript
func (s *service) Transcribe(ctx context.Context, sessionID, documentID string) (*TranscribeOutput, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, fmt.Errorf("%w: documento is required", ucerrors.ErrInvalidInput)
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasCase() {
		return nil, ucerrors.ErrNoActiveCase
	}

	video, ok := session.FindVideo(documentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ucerrors.ErrVideoNotFound, documentID)
	}

	link := s.links.Build(session.CaseNumber, video.DocumentID)
	req := entities.TranscriptionRequest{
		VideoLink:  link,
		VideoName:  video.Name,
		DocumentID: video.DocumentID,
		CaseNumber: session.CaseNumber,
	}

	raw, err := s.transcriber.Transcribe(ctx, req)
	if err != nil {
		s.logger.Error("Erro ao transcrever vídeo",
			zap.String("numero_processo", session.CaseNumber),
			zap.String("documento", documentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrTranscriptionFailed, err)
	}
	if IsEmptyPayload(raw) {
		return nil, ucerrors.ErrTranscriptionEmpty
	}

	transcript, err := FormatTranscript(raw)
	if err != nil {
		s.logger.Warn("unexpected transcription response",
			zap.String("documento", documentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrUpstreamMalformed, err)
	}

	// The upstream call can take minutes; a lookup made meanwhile owns the session now.
	current, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.CaseNumber != session.CaseNumber {
		s.logger.Warn("case changed during transcription",
			zap.String("session_id", sessionID),
			zap.String("numero_processo", session.CaseNumber),
			zap.String("current_numero_processo", current.CaseNumber),
		)
		return nil, fmt.Errorf("%w: %s", ucerrors.ErrCaseChanged, session.CaseNumber)
	}

	video = video.WithLink(link)
	current.RecordTranscript(video, transcript)
	if err := s.saveSession(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("video transcribed",
		zap.String("session_id", sessionID),
		zap.String("numero_processo", session.CaseNumber),
		zap.String("documento", documentID),
		zap.Int("transcript_length", len(transcript)),
	)

	return &TranscribeOutput{Video: video, Transcript: transcript}, nil
}

// Submit forwards the stored transcript to SOLAR
func (s *service) Submit(ctx context.Context, sessionID string) (*SubmitOutput, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Transcript.IsEmpty() {
		return nil, ucerrors.ErrTranscriptMissing
	}

	result, err := s.submitter.SubmitTranscript(ctx, session.Transcript.String())
	if err != nil {
		s.logger.Error("Erro ao enviar ao SOLAR",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrSubmissionFailed, err)
	}
	if result == nil {
		return nil, ucerrors.ErrSubmissionRejected
	}

	session.MarkSubmitted()
	if err := s.saveSession(ctx, session); err != nil {
		// SOLAR already has the transcript; losing the timestamp is not a failure.
		s.logger.Warn("failed to record submission", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Info("transcript submitted to SOLAR",
		zap.String("session_id", sessionID),
		zap.String("numero_processo", session.CaseNumber),
	)

	return &SubmitOutput{Video: session.SelectedVideo, Result: result}, nil
}

// GetSession returns the caller's workflow state, empty if none exists yet
func (s *service) GetSession(ctx context.Context, sessionID string) (*entities.WorkflowSession, error) {
	return s.loadSession(ctx, sessionID)
}

// ResetSession forgets the caller's workflow state
func (s *service) ResetSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %w", ucerrors.ErrSessionUnavailable, err)
	}
	return nil
}

func (s *service) loadSession(ctx context.Context, sessionID string) (*entities.WorkflowSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, entities.ErrSessionNotFound) {
		return entities.NewWorkflowSession(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrSessionUnavailable, err)
	}
	return session, nil
}

func (s *service) saveSession(ctx context.Context, session *entities.WorkflowSession) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("%w: %w", ucerrors.ErrSessionUnavailable, err)
	}
	return nil
}
