package model

import (
	"fmt"
	"strings"
)

// Warnings shown to users who submit blank input.
const (
	WarnBlankCheck  = "Please enter a URL first."
	WarnBlankReport = "Enter a URL to report."
)

// IsBlank reports whether s is empty or whitespace only.
// Surfaces call this before scoring; the extractor itself accepts any string.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ReportAck acknowledges a user report of a URL.
// Nothing is stored; the acknowledgment is the whole effect.
type ReportAck struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Acknowledge builds the acknowledgment for a reported URL.
func Acknowledge(url string) ReportAck {
	return ReportAck{
		URL:     url,
		Message: fmt.Sprintf("Thanks! '%s' has been logged for review.", url),
	}
}
