package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sprintforge/backend/models"
)

func TestParseResourcesJSON(t *testing.T) {
	got := ParseResources(`[{"title":"A","url":"http://x"}]`)
	assert.Equal(t, []models.Resource{{Title: "A", URL: "http://x"}}, got)
}

func TestParseResourcesJSONOrderAndDefaults(t *testing.T) {
	got := ParseResources(`[{"title":"First","url":"http://a"},{"url":"http://b"},{"title":"Third"}]`)
	assert.Equal(t, []models.Resource{
		{Title: "First", URL: "http://a"},
		{Title: "Resource", URL: "http://b"},
		{Title: "Third", URL: "#"},
	}, got)
}

func TestParseResourcesPipeFallback(t *testing.T) {
	got := ParseResources("Intro | http://a\nbroken-line\nDeep Dive | http://b")
	assert.Equal(t, []models.Resource{
		{Title: "Intro", URL: "http://a"},
		{Title: "Deep Dive", URL: "http://b"},
	}, got)
}

func TestParseResourcesPipeDefaults(t *testing.T) {
	got := ParseResources(" | http://only-url\nOnly title | ")
	assert.Equal(t, []models.Resource{
		{Title: "Resource", URL: "http://only-url"},
		{Title: "Only title", URL: "#"},
	}, got)
}

func TestParseResourcesDegradesToEmpty(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"whitespace":     "   \n  ",
		"non-array json": `{"title":"A","url":"http://x"}`,
		"json null":      "null",
		"no separators":  "just some text\nanother line",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ParseResources(input))
		})
	}
}

func TestParseResourcesNonObjectElements(t *testing.T) {
	// Array elements that are not {title, url} objects still render with
	// placeholders rather than dropping the whole list.
	got := ParseResources(`[1, {"title":"Real","url":"http://r"}]`)
	assert.Equal(t, []models.Resource{
		{Title: "Resource", URL: "#"},
		{Title: "Real", URL: "http://r"},
	}, got)
}
