package entities

// DefaultVideoName is used when the lookup service omits a video name
const DefaultVideoName = "Sem nome"

// VideoRef identifies a video document attached to a case.
// DocumentID is never empty for values produced by the lookup normalizer.
type VideoRef struct {
	Name       string `json:"nome"`
	DocumentID string `json:"documento"`
	Link       string `json:"link,omitempty"`
}

// WithLink returns a copy of the reference carrying the given link
func (v VideoRef) WithLink(link string) VideoRef {
	v.Link = link
	return v
}
