// Package idparse pulls a student's name and number out of OCR text read
// from an ID card.
package idparse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultExcludedKeywords are card labels and month names stripped before
// matching, so they are never mistaken for part of a name.
var DefaultExcludedKeywords = []string{
	"RMIT", "Student", "STUDENT", "UNIVERSITY", `SINH\sVIEN`,
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// Capitalized words (spaces or newlines between them) followed by a
// seven-digit student number.
var namePattern = regexp.MustCompile(`([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s*(\d{7})`)

// IDInfo is what could be read off a card
type IDInfo struct {
	Name          string `json:"name"`
	StudentNumber string `json:"studentNumber"`
}

// Extractor matches ID text against a keyword blacklist and the name pattern
type Extractor struct {
	excluded *regexp.Regexp
}

// NewExtractor builds an extractor; keywords are regular expression fragments
// matched case-insensitively. A nil slice selects DefaultExcludedKeywords.
func NewExtractor(keywords []string) (*Extractor, error) {
	if keywords == nil {
		keywords = DefaultExcludedKeywords
	}
	e := &Extractor{}
	if len(keywords) == 0 {
		return e, nil
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(keywords, "|") + `)`)
	if err != nil {
		return nil, err
	}
	e.excluded = re
	return e, nil
}

var defaultExtractor, _ = NewExtractor(nil)

// Extract uses the default keyword list
func Extract(text string) (IDInfo, bool) {
	return defaultExtractor.Extract(text)
}

// Extract returns the first name and student number found in text
func (e *Extractor) Extract(text string) (IDInfo, bool) {
	cleaned := text
	if e.excluded != nil {
		cleaned = e.excluded.ReplaceAllString(text, "")
	}

	m := namePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return IDInfo{}, false
	}

	return IDInfo{
		Name:          formatName(m[1]),
		StudentNumber: strings.TrimSpace(m[2]),
	}, true
}

// formatName title-cases words printed in all capitals and keeps the rest
// as they are.
func formatName(raw string) string {
	title := cases.Title(language.Und)
	parts := strings.Fields(raw)
	for i, p := range parts {
		if strings.ToUpper(p) == p {
			parts[i] = title.String(p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
