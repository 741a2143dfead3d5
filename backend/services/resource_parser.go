package services

import (
	"encoding/json"
	"strings"

	"sprintforge/backend/models"
)

const (
	defaultResourceTitle = "Resource"
	defaultResourceURL   = "#"
)

// ParseResources turns a challenge's free-form resources field into a list
// of links. Two formats are accepted: a JSON array of {title, url} objects,
// or plain lines of "Some title | https://example.com". Anything
// unparseable degrades to fewer (or zero) resources; missing links are a
// display concern, not an error, so there is no error return.
func ParseResources(text string) []models.Resource {
	resources := []models.Resource{}

	text = strings.TrimSpace(text)
	if text == "" {
		return resources
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err == nil && strings.HasPrefix(text, "[") {
		for _, raw := range items {
			var item struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			}
			// Elements that are not {title, url} objects still render,
			// just with placeholder values.
			_ = json.Unmarshal(raw, &item)
			resources = append(resources, models.Resource{
				Title: orDefault(item.Title, defaultResourceTitle),
				URL:   orDefault(item.URL, defaultResourceURL),
			})
		}
		return resources
	}

	// Fallback: pipe-delimited lines. Lines without a separator are
	// silently dropped.
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		resources = append(resources, models.Resource{
			Title: orDefault(strings.TrimSpace(parts[0]), defaultResourceTitle),
			URL:   orDefault(strings.TrimSpace(parts[1]), defaultResourceURL),
		})
	}
	return resources
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
