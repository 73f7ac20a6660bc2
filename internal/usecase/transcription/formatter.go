package transcription

import (
	"errors"
	"fmt"
	"strings"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
)

var (
	// ErrEmptyPayload is returned for an empty JSON array
	ErrEmptyPayload = errors.New("empty payload")
	// ErrMalformedPayload is returned when an utterance cannot be read
	ErrMalformedPayload = errors.New("malformed transcription payload")
)

// FormatTranscript renders a transcription result as "speaker:\ntext\n" blocks.
//
// When the payload is an array only its first element is read. Utterances with
// empty text are dropped. Without any usable utterance the top-level "text" is
// returned trimmed. On error the returned transcript is always empty.
func FormatTranscript(payload any) (entities.FormattedTranscript, error) {
	data, err := transcriptRecord(payload)
	if err != nil {
		return "", err
	}

	utterances, err := ExtractUtterances(data)
	if err != nil {
		return "", err
	}

	if len(utterances) > 0 {
		blocks := make([]string, 0, len(utterances))
		for _, u := range utterances {
			blocks = append(blocks, fmt.Sprintf("%s:\n%s\n", u.Speaker, u.Text))
		}
		return entities.FormattedTranscript(strings.TrimSpace(strings.Join(blocks, "\n"))), nil
	}

	text, ok := jsonText(data["text"])
	if !ok {
		return "", fmt.Errorf("%w: text is %T", ErrMalformedPayload, data["text"])
	}
	return entities.FormattedTranscript(strings.TrimSpace(text)), nil
}

// ExtractUtterances reads the "utterances" array of a transcription record,
// trimming fields, defaulting the speaker and skipping entries without text.
// A missing or non-array "utterances" field yields no utterances.
func ExtractUtterances(data map[string]any) ([]entities.Utterance, error) {
	list, ok := asList(data["utterances"])
	if !ok || len(list) == 0 {
		return nil, nil
	}

	utterances := make([]entities.Utterance, 0, len(list))
	for i, item := range list {
		obj, ok := asObject(item)
		if !ok {
			return nil, fmt.Errorf("%w: utterance %d is %T", ErrMalformedPayload, i, item)
		}

		speaker, ok := textOrDefault(obj["speaker"], entities.DefaultSpeaker)
		if !ok {
			return nil, fmt.Errorf("%w: utterance %d speaker is %T", ErrMalformedPayload, i, obj["speaker"])
		}
		text, ok := jsonText(obj["text"])
		if !ok {
			return nil, fmt.Errorf("%w: utterance %d text is %T", ErrMalformedPayload, i, obj["text"])
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		utterances = append(utterances, entities.Utterance{
			Speaker: strings.TrimSpace(speaker),
			Text:    text,
		})
	}
	return utterances, nil
}

// transcriptRecord picks the object to read from a transcription payload
func transcriptRecord(payload any) (map[string]any, error) {
	if list, ok := asList(payload); ok {
		if len(list) == 0 {
			return nil, ErrEmptyPayload
		}
		obj, ok := asObject(list[0])
		if !ok {
			return nil, fmt.Errorf("%w: first element is %T", ErrUnexpectedShape, list[0])
		}
		return obj, nil
	}

	if obj, ok := asObject(payload); ok {
		return obj, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnexpectedShape, payload)
}

// IsEmptyPayload reports whether a decoded response carries nothing:
// null, an empty object or an empty array.
func IsEmptyPayload(payload any) bool {
	if payload == nil {
		return true
	}
	if list, ok := asList(payload); ok {
		return len(list) == 0
	}
	if obj, ok := asObject(payload); ok {
		return len(obj) == 0
	}
	return false
}
