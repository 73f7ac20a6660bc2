package entities

import (
	"time"

	"github.com/google/uuid"
)

// WorkflowSession holds the state a user accumulates across the
// lookup -> transcribe -> submit steps. It is owned by the caller and keyed by ID.
type WorkflowSession struct {
	ID            string              `json:"id"`
	CaseNumber    string              `json:"numero_processo,omitempty"`
	Videos        []VideoRef          `json:"videos"`
	SelectedVideo *VideoRef           `json:"video_selecionado,omitempty"`
	Transcript    FormattedTranscript `json:"transcricao,omitempty"`
	SubmittedAt   *time.Time          `json:"enviado_em,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// NewSessionID generates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// IsValidSessionID reports whether id looks like an identifier issued by NewSessionID
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// NewWorkflowSession creates an empty session
func NewWorkflowSession(id string) *WorkflowSession {
	now := time.Now()
	return &WorkflowSession{
		ID:        id,
		Videos:    []VideoRef{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StartCase replaces the active case and forgets any previous selection
func (s *WorkflowSession) StartCase(caseNumber string, videos []VideoRef) {
	s.CaseNumber = caseNumber
	s.Videos = videos
	if s.Videos == nil {
		s.Videos = []VideoRef{}
	}
	s.SelectedVideo = nil
	s.Transcript = ""
	s.SubmittedAt = nil
	s.touch()
}

// HasCase reports whether a case lookup happened in this session
func (s *WorkflowSession) HasCase() bool {
	return s != nil && s.CaseNumber != ""
}

// FindVideo returns the video with the given document ID
func (s *WorkflowSession) FindVideo(documentID string) (VideoRef, bool) {
	for _, v := range s.Videos {
		if v.DocumentID == documentID {
			return v, true
		}
	}
	return VideoRef{}, false
}

// RecordTranscript stores the transcript of the selected video
func (s *WorkflowSession) RecordTranscript(video VideoRef, transcript FormattedTranscript) {
	s.SelectedVideo = &video
	s.Transcript = transcript
	s.SubmittedAt = nil
	s.touch()
}

// MarkSubmitted records a successful SOLAR submission
func (s *WorkflowSession) MarkSubmitted() {
	now := time.Now()
	s.SubmittedAt = &now
	s.touch()
}

func (s *WorkflowSession) touch() {
	s.UpdatedAt = time.Now()
}
