package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// LookupCaseRequest is the body of POST /consultar-processo
type LookupCaseRequest struct {
	CaseNumber string `json:"numero_processo" validate:"required,path_segment"`
}

// Normalize trims surrounding whitespace
func (r *LookupCaseRequest) Normalize() {
	r.CaseNumber = strings.TrimSpace(r.CaseNumber)
}

// TranscribeRequest is the body of POST /transcrever
type TranscribeRequest struct {
	DocumentID FlexString `json:"documento" validate:"required,path_segment" swaggertype:"string"`
}

// Normalize trims surrounding whitespace
func (r *TranscribeRequest) Normalize() {
	r.DocumentID = FlexString(strings.TrimSpace(string(r.DocumentID)))
}

// FlexString accepts a JSON string or number. Browsers send document ids either way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("documento must be a string or number: %w", err)
	}
	// Numeric zero carries no document.
	if v, err := n.Float64(); err == nil && v == 0 {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the raw value
func (f FlexString) String() string {
	return string(f)
}
