package model

import "time"

// PlaybookCategory groups wiki sections by purpose
type PlaybookCategory string

const (
	PlaybookBrandBible      PlaybookCategory = "Brand Bible"
	PlaybookOperatingSystem PlaybookCategory = "Operating System"
	PlaybookVoiceLibrary    PlaybookCategory = "Voice Library"
	PlaybookLegalIP         PlaybookCategory = "Legal & IP"
	PlaybookPhilosophy      PlaybookCategory = "Philosophy"
)

// PlaybookSection is a long-form wiki page. Version starts at 1 and the
// store bumps it on every update, whether or not the content changed.
type PlaybookSection struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Category    PlaybookCategory `json:"category" yaml:"category"`
	Content     string           `json:"content" yaml:"content"`
	LastUpdated time.Time        `json:"last_updated" yaml:"last_updated"`
	Author      string           `json:"author" yaml:"author"`
	Attachments []string         `json:"attachments" yaml:"attachments"`
	Tags        []string         `json:"tags" yaml:"tags"`
	Version     int              `json:"version" yaml:"version"`
}

// PlaybookSectionPatch is a partial update for a PlaybookSection.
// LastUpdated and Version are store-managed.
type PlaybookSectionPatch struct {
	Title       *string
	Category    *PlaybookCategory
	Content     *string
	Author      *string
	Attachments *[]string
	Tags        *[]string
}

// Apply merges the patch onto ps
func (p PlaybookSectionPatch) Apply(ps *PlaybookSection) {
	if p.Title != nil {
		ps.Title = *p.Title
	}
	if p.Category != nil {
		ps.Category = *p.Category
	}
	if p.Content != nil {
		ps.Content = *p.Content
	}
	if p.Author != nil {
		ps.Author = *p.Author
	}
	if p.Attachments != nil {
		ps.Attachments = append([]string(nil), (*p.Attachments)...)
	}
	if p.Tags != nil {
		ps.Tags = append([]string(nil), (*p.Tags)...)
	}
}
