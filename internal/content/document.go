// Package content models the profile's free-form JSON document and the
// operations the builder performs on it. The document is stored as a jsonb
// column on the profile row; this package is its typed view.
package content

import (
	"encoding/json"

	"gorm.io/datatypes"

	"iconsherald/internal/tiers"
)

// BasicInfo is the first builder step, required on every tier.
type BasicInfo struct {
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Location string `json:"location,omitempty"`
}

// Metric is one impact-metric figure (e.g. "Companies founded: 4").
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Entry is one record of any managed list. Kinds use the display fields
// they need and leave the rest empty; Order and IsVisible are maintained
// by the list manager, never by callers.
type Entry struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	IsVisible   bool   `json:"is_visible"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Date        string `json:"date,omitempty"`
	Author      string `json:"author,omitempty"`
}

// Document is the full profile content. Templates treat every field as
// optional; tiers decide which ones the builder exposes.
type Document struct {
	BasicInfo BasicInfo `json:"basic_info"`

	HeroVideoURL  string   `json:"hero_video_url,omitempty"`
	ImpactMetrics []Metric `json:"impact_metrics,omitempty"`
	FutureVision  string   `json:"future_vision,omitempty"`

	Achievements []Entry `json:"achievements,omitempty"`
	Links        []Entry `json:"links,omitempty"`
	Gallery      []Entry `json:"gallery,omitempty"`
	Milestones   []Entry `json:"milestones,omitempty"`
	Quotes       []Entry `json:"quotes,omitempty"`
	Tributes     []Entry `json:"tributes,omitempty"`
}

// Parse decodes a stored content column. An empty column yields an empty
// document, not an error.
func Parse(raw datatypes.JSON) (*Document, error) {
	doc := &Document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode serializes the document back into the content column.
func (d *Document) Encode() (datatypes.JSON, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// List returns a pointer to the entry list of the given kind.
func (d *Document) List(kind tiers.ListKind) *[]Entry {
	switch kind {
	case tiers.ListAchievements:
		return &d.Achievements
	case tiers.ListLinks:
		return &d.Links
	case tiers.ListGallery:
		return &d.Gallery
	case tiers.ListMilestones:
		return &d.Milestones
	case tiers.ListQuotes:
		return &d.Quotes
	case tiers.ListTributes:
		return &d.Tributes
	}
	return nil
}

// Normalize renumbers every list so that order values are dense and
// zero-based. Called after any bulk replacement of the document.
func (d *Document) Normalize() {
	for _, kind := range tiers.ListKinds {
		list := d.List(kind)
		Renumber(*list)
	}
}
