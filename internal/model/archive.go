package model

import "time"

// ArchiveType categorizes what kind of work an archive item holds
type ArchiveType string

const (
	ArchiveCampaign    ArchiveType = "Campaign"
	ArchiveMoodboard   ArchiveType = "Moodboard"
	ArchiveDeck        ArchiveType = "Deck"
	ArchiveAsset       ArchiveType = "Asset"
	ArchivePrompt      ArchiveType = "Prompt"
	ArchiveCode        ArchiveType = "Code"
	ArchiveSketch      ArchiveType = "Sketch"
	ArchiveInspiration ArchiveType = "Inspiration"
)

// ArchiveVersion is one revision of an archived file, owned by its item
type ArchiveVersion struct {
	ID      string    `json:"id" yaml:"id"`
	Version int       `json:"version" yaml:"version"`
	Date    time.Time `json:"date" yaml:"date"`
	Author  string    `json:"author" yaml:"author"`
	Changes string    `json:"changes" yaml:"changes"`
	FileURL string    `json:"file_url" yaml:"file_url"`
}

// ArchiveItem is an entry in the digital asset archive. ProjectID and
// ClientID are soft references: never validated, never cascaded.
type ArchiveItem struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Type        ArchiveType      `json:"type" yaml:"type"`
	Folder      string           `json:"folder" yaml:"folder"`
	Tags        []string         `json:"tags" yaml:"tags"`
	Date        time.Time        `json:"date" yaml:"date"`
	Thumbnail   string           `json:"thumbnail" yaml:"thumbnail"`
	FileURL     string           `json:"file_url" yaml:"file_url"`
	Description string           `json:"description" yaml:"description"`
	ProjectID   string           `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ClientID    string           `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	IsIP        bool             `json:"is_ip" yaml:"is_ip"`
	Watermarked bool             `json:"watermarked" yaml:"watermarked"`
	Versions    []ArchiveVersion `json:"versions" yaml:"versions"`
	Views       int              `json:"views" yaml:"views"`
	Likes       int              `json:"likes" yaml:"likes"`
}

// ArchiveItemPatch is a partial update for an ArchiveItem. Likes are only
// reachable through the store's like operation; versions through its
// version operation.
type ArchiveItemPatch struct {
	Title       *string
	Type        *ArchiveType
	Folder      *string
	Tags        *[]string
	Date        *time.Time
	Thumbnail   *string
	FileURL     *string
	Description *string
	ProjectID   *string
	ClientID    *string
	IsIP        *bool
	Watermarked *bool
	Views       *int
}

// Apply merges the patch onto a
func (p ArchiveItemPatch) Apply(a *ArchiveItem) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Folder != nil {
		a.Folder = *p.Folder
	}
	if p.Tags != nil {
		a.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Thumbnail != nil {
		a.Thumbnail = *p.Thumbnail
	}
	if p.FileURL != nil {
		a.FileURL = *p.FileURL
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ProjectID != nil {
		a.ProjectID = *p.ProjectID
	}
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.IsIP != nil {
		a.IsIP = *p.IsIP
	}
	if p.Watermarked != nil {
		a.Watermarked = *p.Watermarked
	}
	if p.Views != nil {
		a.Views = *p.Views
	}
}
