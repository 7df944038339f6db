// Package dto contains the wire projections of the stored entities. Every
// field that appears in a response is enumerated here by hand; back
// references from children to parents are deliberately omitted to keep the
// output acyclic, and password hashes never leave the store.
package dto

import (
	"time"

	"fwfps/internal/constants"
)

// Option is a {value, label} pair for the enum reference endpoints.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTimestamp(*t)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(constants.DateLayout)
	return &s
}
