package presenter

import (
	"github.com/defensoria-df/solar-transcricao/internal/adapter/dto/workflow"
	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/internal/usecase/transcription"
)

// SubmitSuccessMessage is shown after SOLAR accepts a transcript
const SubmitSuccessMessage = "Transcrição enviada ao SOLAR com sucesso!"

// ToVideoResponse converts a VideoRef entity to VideoResponse DTO
func ToVideoResponse(v entities.VideoRef) workflow.VideoResponse {
	return workflow.VideoResponse{
		Name:       v.Name,
		DocumentID: v.DocumentID,
		Link:       v.Link,
	}
}

// ToVideoResponses converts a list of videos, never returning nil
func ToVideoResponses(videos []entities.VideoRef) []workflow.VideoResponse {
	out := make([]workflow.VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, ToVideoResponse(v))
	}
	return out
}

// ToLookupCaseResponse converts a lookup result to its DTO
func ToLookupCaseResponse(o *transcription.LookupOutput) *workflow.LookupCaseResponse {
	if o == nil {
		return nil
	}
	videos := ToVideoResponses(o.Videos)
	return &workflow.LookupCaseResponse{
		Success:    true,
		CaseNumber: o.CaseNumber,
		Videos:     videos,
		Total:      len(videos),
	}
}

// ToTranscribeResponse converts a transcription result to its DTO
func ToTranscribeResponse(o *transcription.TranscribeOutput) *workflow.TranscribeResponse {
	if o == nil {
		return nil
	}
	return &workflow.TranscribeResponse{
		Success:    true,
		Transcript: o.Transcript.String(),
		Video:      ToVideoResponse(o.Video),
	}
}

// ToSubmitResponse converts a submission result to its DTO
func ToSubmitResponse(o *transcription.SubmitOutput) *workflow.SubmitResponse {
	resp := &workflow.SubmitResponse{
		Success: true,
		Message: SubmitSuccessMessage,
	}
	if o != nil && o.Video != nil {
		v := ToVideoResponse(*o.Video)
		resp.Video = &v
	}
	return resp
}

// ToSessionResponse converts a workflow session to its DTO
func ToSessionResponse(s *entities.WorkflowSession) *workflow.SessionResponse {
	resp := &workflow.SessionResponse{
		Success: true,
		Videos:  []workflow.VideoResponse{},
	}
	if s == nil {
		return resp
	}

	resp.CaseNumber = s.CaseNumber
	resp.Videos = ToVideoResponses(s.Videos)
	resp.Total = len(resp.Videos)
	resp.Transcript = s.Transcript.String()
	resp.SubmittedAt = s.SubmittedAt
	if s.SelectedVideo != nil {
		v := ToVideoResponse(*s.SelectedVideo)
		resp.SelectedVideo = &v
	}
	if !s.UpdatedAt.IsZero() && s.HasCase() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
