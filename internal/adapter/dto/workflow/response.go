package workflow

import "time"

// VideoResponse is a video of the active case
type VideoResponse struct {
	Name       string `json:"nome"`
	DocumentID string `json:"documento"`
	Link       string `json:"link,omitempty"`
}

// LookupCaseResponse is returned by POST /consultar-processo
type LookupCaseResponse struct {
	Success    bool            `json:"success"`
	CaseNumber string          `json:"numero_processo"`
	Videos     []VideoResponse `json:"videos"`
	Total      int             `json:"total"`
}

// TranscribeResponse is returned by POST /transcrever
type TranscribeResponse struct {
	Success    bool          `json:"success"`
	Transcript string        `json:"transcricao"`
	Video      VideoResponse `json:"video"`
}

// SubmitResponse is returned by POST /enviar-solar
type SubmitResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Video   *VideoResponse `json:"video,omitempty"`
}

// SessionResponse is returned by GET /sessao
type SessionResponse struct {
	Success       bool            `json:"success"`
	CaseNumber    string          `json:"numero_processo,omitempty"`
	Videos        []VideoResponse `json:"videos"`
	Total         int             `json:"total"`
	SelectedVideo *VideoResponse  `json:"video,omitempty"`
	Transcript    string          `json:"transcricao,omitempty"`
	SubmittedAt   *time.Time      `json:"enviado_em,omitempty"`
	UpdatedAt     *time.Time      `json:"atualizado_em,omitempty"`
}
