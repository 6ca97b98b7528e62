package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"pdfchat-api/internal/domain"

	"github.com/supabase-community/supabase-go"
)

func dbClient(c domain.SupabaseClient) (*supabase.Client, error) {
	client := c.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}
	return client, nil
}

func decodeRows(data []byte) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return rows, nil
}

// Helper functions for type conversion
func getString(data map[string]interface{}, key string) string {
	if val, ok := data[key]; ok && val != nil {
		switch v := val.(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// getStringOrDefault treats a missing, null or blank column as absent.
func getStringOrDefault(data map[string]interface{}, key string, defaultValue string) string {
	if v := strings.TrimSpace(getString(data, key)); v != "" {
		return v
	}
	return defaultValue
}

func getStringPointer(data map[string]interface{}, key string) *string {
	if v := getString(data, key); v != "" {
		return &v
	}
	return nil
}

func getIntOrDefault(data map[string]interface{}, key string, defaultValue int) int {
	if val, ok := data[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return defaultValue
}

// getJSONArray returns the column as a raw JSON array, [] when absent.
func getJSONArray(data map[string]interface{}, key string) json.RawMessage {
	empty := json.RawMessage("[]")
	val, ok := data[key]
	if !ok || val == nil {
		return empty
	}
	switch v := val.(type) {
	case []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return empty
		}
		return raw
	case string:
		// Some rows were written with the history serialized as text.
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") && json.Valid([]byte(trimmed)) {
			return json.RawMessage(trimmed)
		}
	}
	return empty
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// getTime normalizes the timestamp encodings found in stored rows: RFC 3339
// and Postgres text, epoch seconds or milliseconds, and exported document
// timestamps of the form {"_seconds": s, "_nanoseconds": ns}.
func getTime(data map[string]interface{}, key string) *time.Time {
	val, ok := data[key]
	if !ok || val == nil {
		return nil
	}
	var t time.Time
	switch v := val.(type) {
	case string:
		parsed, ok := parseTimestamp(v)
		if !ok {
			return nil
		}
		t = parsed
	case float64:
		t = epochToTime(v)
	case map[string]interface{}:
		seconds, ok := v["_seconds"].(float64)
		if !ok {
			seconds, ok = v["seconds"].(float64)
		}
		if !ok {
			return nil
		}
		nanos, _ := v["_nanoseconds"].(float64)
		t = time.Unix(int64(seconds), int64(nanos))
	default:
		return nil
	}
	t = t.UTC()
	return &t
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Values above 1e12 can only be milliseconds for any date after 1970-01-12.
func epochToTime(v float64) time.Time {
	if math.Abs(v) >= 1e12 {
		return time.UnixMilli(int64(v))
	}
	return time.Unix(int64(v), 0)
}
