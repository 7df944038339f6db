package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fwfps/internal/constants"
)

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTimestamp accepts an RFC3339 timestamp, an offset-naive ISO
// timestamp, or a bare date.
func parseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", constants.DateLayout} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Sparse-patch helpers. Update bodies are decoded into a raw map so that
// "absent" and "present-but-null" can be told apart; absent keys return nil
// pointers and leave the stored field alone.

func patchString(raw map[string]any, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if v == nil {
		empty := ""
		return &empty
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// patchInt rejects fractional and non-numeric values rather than
// truncating or ignoring them.
func patchInt(raw map[string]any, key string) (*int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	// JSON numbers decode as float64
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	n := int(f)
	return &n, nil
}

// patchDate returns the parsed value and whether the field was sent as an
// explicit null, which clears it.
func patchDate(raw map[string]any, key string) (*time.Time, bool, error) {
	v, ok := raw[key]
	if !ok {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, false, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}

func patchTimestamp(raw map[string]any, key string) (*time.Time, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, nil
	}
	return parseTimestamp(s)
}
