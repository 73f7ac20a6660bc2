package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/pkg/callcontext"
)

const StepTranscription = "transcrever_video"

// Transcriber transcribes case videos directly with AssemblyAI, bypassing the
// n8n transcription workflow. Its result has the same {text, utterances} shape.
type Transcriber struct {
	client   *aai.Client
	language string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewTranscriber creates an AssemblyAI backed transcriber. timeout bounds the
// whole submit-and-poll cycle of one video.
func NewTranscriber(client *aai.Client, language string, timeout time.Duration, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{
		client:   client,
		language: language,
		timeout:  timeout,
		logger:   logger,
	}
}

// Transcribe submits the video link and waits for the completed transcript
func (t *Transcriber) Transcribe(ctx context.Context, req entities.TranscriptionRequest) (any, error) {
	ctx, cancel := callcontext.Begin(ctx, StepTranscription, t.timeout)
	defer cancel()

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if t.language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(t.language)
	}

	t.logger.Info("assemblyai.transcribe",
		zap.String("documento", req.DocumentID),
		zap.String("numero_processo", req.CaseNumber),
	)

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, req.VideoLink, params)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe with AssemblyAI: %w", err)
	}

	t.logger.Info("assemblyai.transcribe.done",
		zap.String("documento", req.DocumentID),
		zap.String("status", string(transcript.Status)),
		zap.Int("utterances", len(transcript.Utterances)),
		zap.Duration("elapsed", callcontext.Elapsed(ctx)),
	)

	return toPayload(transcript)
}

// toPayload converts an SDK transcript into the loosely typed JSON shape the
// formatter reads, failing on transcripts AssemblyAI marked as errored.
func toPayload(transcript aai.Transcript) (any, error) {
	if transcript.Status == aai.TranscriptStatusError {
		reason := "unknown error"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcript failed: %s", reason)
	}

	b, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return payload, nil
}
