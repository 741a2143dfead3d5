package models

// Resource is one learning link attached to a challenge.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
