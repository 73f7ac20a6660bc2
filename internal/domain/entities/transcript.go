package entities

// DefaultSpeaker labels utterances whose speaker is unknown
const DefaultSpeaker = "Interlocutor"

// Utterance is one speaker turn in a transcription payload
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// FormattedTranscript is the newline-joined "speaker:\ntext\n" text forwarded to SOLAR
type FormattedTranscript string

// IsEmpty reports whether there is nothing to submit
func (t FormattedTranscript) IsEmpty() bool {
	return t == ""
}

// String implements fmt.Stringer
func (t FormattedTranscript) String() string {
	return string(t)
}

// TranscriptionRequest is the payload sent to the transcription service
type TranscriptionRequest struct {
	VideoLink  string `json:"link_video"`
	VideoName  string `json:"nome_video"`
	DocumentID string `json:"id_documento"`
	CaseNumber string `json:"numero_processo"`
}
