package transcription

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultVideoBaseURL is the SOLAR process API serving case videos
const DefaultVideoBaseURL = "https://novosolar.defensoria.df.gov.br/procapi"

var defaultLinks = NewLinkBuilder(DefaultVideoBaseURL)

// LinkBuilder builds video URLs under a fixed base
type LinkBuilder struct {
	baseURL string
}

// NewLinkBuilder creates a builder for baseURL, falling back to DefaultVideoBaseURL
func NewLinkBuilder(baseURL string) *LinkBuilder {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultVideoBaseURL
	}
	return &LinkBuilder{baseURL: baseURL}
}

// Build returns {base}/processo/{case}/documento/{document}/ with both segments path-escaped
func (b *LinkBuilder) Build(caseNumber, documentID string) string {
	return fmt.Sprintf("%s/processo/%s/documento/%s/",
		b.baseURL,
		url.PathEscape(caseNumber),
		url.PathEscape(documentID),
	)
}

// BuildLink builds a video URL under DefaultVideoBaseURL
func BuildLink(caseNumber, documentID string) string {
	return defaultLinks.Build(caseNumber, documentID)
}
