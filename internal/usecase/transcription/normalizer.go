package transcription

import (
	"errors"
	"strings"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
)

// ErrUnexpectedShape is returned when a payload is neither a JSON object nor a JSON array
var ErrUnexpectedShape = errors.New("unexpected payload shape")

// NormalizeVideos turns the case lookup response into an ordered list of video references.
//
// A JSON array yields one reference per object element carrying a non-empty
// "documento"; other elements are skipped. A JSON object yields a single reference
// when it carries "documento" and none otherwise. Any other shape yields an empty
// list together with ErrUnexpectedShape. The result is never nil.
func NormalizeVideos(raw any) ([]entities.VideoRef, error) {
	videos := []entities.VideoRef{}

	if list, ok := asList(raw); ok {
		for _, item := range list {
			obj, ok := asObject(item)
			if !ok {
				continue
			}
			if v, ok := videoFromObject(obj); ok {
				videos = append(videos, v)
			}
		}
		return videos, nil
	}

	if obj, ok := asObject(raw); ok {
		if v, ok := videoFromObject(obj); ok {
			videos = append(videos, v)
		}
		return videos, nil
	}

	return videos, ErrUnexpectedShape
}

func videoFromObject(obj map[string]any) (entities.VideoRef, bool) {
	raw := obj["documento"]
	if isBlank(raw) {
		return entities.VideoRef{}, false
	}
	documentID, ok := jsonText(raw)
	if !ok {
		return entities.VideoRef{}, false
	}

	name, ok := textOrDefault(obj["nome"], entities.DefaultVideoName)
	if !ok {
		name = entities.DefaultVideoName
	}

	return entities.VideoRef{
		Name:       name,
		DocumentID: strings.TrimSpace(documentID),
	}, true
}
