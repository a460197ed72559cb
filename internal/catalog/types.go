package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Status is the two-valued active/inactive flag shared by movies and languages
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

// Toggle returns the opposite status. Anything that is not active toggles to active.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Label returns the badge text rendered for the status
func (s Status) Label() string {
	if s == StatusActive {
		return "Activo"
	}
	return "Inactivo"
}

// Movie is a movie record owned by the backend
type Movie struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// UnmarshalJSON accepts a string or numeric id
func (m *Movie) UnmarshalJSON(data []byte) error {
	type plain Movie
	aux := struct {
		*plain
		ID opaqueID `json:"id"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.ID = string(aux.ID)
	return nil
}

// ExternalMovie is a transient search result from the third-party movie API.
// Every field may be missing in the upstream response.
type ExternalMovie struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty"`
}

// UnmarshalJSON leaves ReleaseYear nil when the upstream value is not an
// integer or a string holding one
func (m *ExternalMovie) UnmarshalJSON(data []byte) error {
	type plain ExternalMovie
	aux := struct {
		*plain
		ReleaseYear json.RawMessage `json:"release_year"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.ReleaseYear = parseYear(aux.ReleaseYear)
	return nil
}

func parseYear(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &year
}

// NameText returns the name or "" when absent
func (m ExternalMovie) NameText() string {
	return deref(m.Name)
}

// DescriptionText returns the description or "" when absent
func (m ExternalMovie) DescriptionText() string {
	return deref(m.Description)
}

// YearText returns the release year or "" when absent
func (m ExternalMovie) YearText() string {
	if m.ReleaseYear == nil {
		return ""
	}
	return strconv.Itoa(*m.ReleaseYear)
}

// Language is a language record stored by the backend
type Language struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Region     string `json:"region"`
	Status     Status `json:"estado"`
}

// UnmarshalJSON accepts a string or numeric id
func (l *Language) UnmarshalJSON(data []byte) error {
	type plain Language
	aux := struct {
		*plain
		ID opaqueID `json:"id"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.ID = string(aux.ID)
	return nil
}

// Input returns the editable fields of the language
func (l Language) Input() LanguageInput {
	return LanguageInput{
		Code:       l.Code,
		Name:       l.Name,
		NativeName: l.NativeName,
		Region:     l.Region,
	}
}

// LanguageInput holds the four editable language fields sent on create and update
type LanguageInput struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Region     string `json:"region"`
}

// ExternalLanguage is a read-only entry of the third-party language catalog
type ExternalLanguage struct {
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
}

// CodeText returns the code or "" when absent
func (l ExternalLanguage) CodeText() string {
	return deref(l.Code)
}

// NameText returns the name or "" when absent
func (l ExternalLanguage) NameText() string {
	return deref(l.Name)
}

// opaqueID decodes a record id sent either as a JSON string or a JSON number.
// null decodes to "".
type opaqueID string

func (id *opaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = opaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", data)
	}
	*id = opaqueID(n.String())
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
