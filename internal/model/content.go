package model

import "time"

// ContentType is the format of a planned content piece
type ContentType string

const (
	ContentCampaign ContentType = "Campaign"
	ContentPost     ContentType = "Post"
	ContentVideo    ContentType = "Video"
	ContentStory    ContentType = "Story"
	ContentAd       ContentType = "Ad"
	ContentEmail    ContentType = "Email"
)

// ContentStatus follows a piece from idea to publication
type ContentStatus string

const (
	ContentIdea      ContentStatus = "Idea"
	ContentDraft     ContentStatus = "Draft"
	ContentReview    ContentStatus = "Review"
	ContentApproved  ContentStatus = "Approved"
	ContentPublished ContentStatus = "Published"
	ContentArchived  ContentStatus = "Archived"
)

// ContentVersion is one revision of a script, owned by its content item
type ContentVersion struct {
	ID       string    `json:"id" yaml:"id"`
	Version  int       `json:"version" yaml:"version"`
	Content  string    `json:"content" yaml:"content"`
	Date     time.Time `json:"date" yaml:"date"`
	Author   string    `json:"author" yaml:"author"`
	Feedback string    `json:"feedback" yaml:"feedback"`
}

// Script bundles the working copy with its revision history
type Script struct {
	Content  string           `json:"content" yaml:"content"`
	Versions []ContentVersion `json:"versions" yaml:"versions"`
}

// Visual holds the thumbnail and asset references for a content piece
type Visual struct {
	Thumbnail string   `json:"thumbnail" yaml:"thumbnail"`
	Assets    []string `json:"assets" yaml:"assets"`
}

// Analytics counters start at zero and are only ever updated by callers;
// the store never increments them itself.
type Analytics struct {
	Views      int `json:"views" yaml:"views"`
	Engagement int `json:"engagement" yaml:"engagement"`
	Clicks     int `json:"clicks" yaml:"clicks"`
}

// ContentItem is a scheduled or published piece of content
type ContentItem struct {
	ID            string        `json:"id" yaml:"id"`
	Title         string        `json:"title" yaml:"title"`
	Type          ContentType   `json:"type" yaml:"type"`
	Status        ContentStatus `json:"status" yaml:"status"`
	ScheduledDate *time.Time    `json:"scheduled_date,omitempty" yaml:"scheduled_date,omitempty"`
	PublishedDate *time.Time    `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	Platform      []string      `json:"platform" yaml:"platform"`
	Script        Script        `json:"script" yaml:"script"`
	Visual        Visual        `json:"visual" yaml:"visual"`
	CTA           string        `json:"cta" yaml:"cta"`
	Assignee      string        `json:"assignee" yaml:"assignee"`
	ProjectID     string        `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Analytics     Analytics     `json:"analytics" yaml:"analytics"`
	AIPrompts     []AIPrompt    `json:"ai_prompts" yaml:"ai_prompts"`
}

// ContentItemPatch is a partial update for a ContentItem
type ContentItemPatch struct {
	Title         *string
	Type          *ContentType
	Status        *ContentStatus
	ScheduledDate *time.Time
	PublishedDate *time.Time
	Platform      *[]string
	Script        *Script
	Visual        *Visual
	CTA           *string
	Assignee      *string
	ProjectID     *string
	Analytics     *Analytics
}

// Apply merges the patch onto ci
func (p ContentItemPatch) Apply(ci *ContentItem) {
	if p.Title != nil {
		ci.Title = *p.Title
	}
	if p.Type != nil {
		ci.Type = *p.Type
	}
	if p.Status != nil {
		ci.Status = *p.Status
	}
	if p.ScheduledDate != nil {
		d := *p.ScheduledDate
		ci.ScheduledDate = &d
	}
	if p.PublishedDate != nil {
		d := *p.PublishedDate
		ci.PublishedDate = &d
	}
	if p.Platform != nil {
		ci.Platform = append([]string(nil), (*p.Platform)...)
	}
	if p.Script != nil {
		ci.Script = Script{
			Content:  p.Script.Content,
			Versions: append([]ContentVersion(nil), p.Script.Versions...),
		}
	}
	if p.Visual != nil {
		ci.Visual = Visual{
			Thumbnail: p.Visual.Thumbnail,
			Assets:    append([]string(nil), p.Visual.Assets...),
		}
	}
	if p.CTA != nil {
		ci.CTA = *p.CTA
	}
	if p.Assignee != nil {
		ci.Assignee = *p.Assignee
	}
	if p.ProjectID != nil {
		ci.ProjectID = *p.ProjectID
	}
	if p.Analytics != nil {
		ci.Analytics = *p.Analytics
	}
}

// PromptType names the model a prompt targets
type PromptType string

const (
	PromptMidjourney PromptType = "Midjourney"
	PromptDALLE      PromptType = "DALL-E"
	PromptSora       PromptType = "Sora"
	PromptGPT        PromptType = "GPT"
	PromptClaude     PromptType = "Claude"
	PromptCustom     PromptType = "Custom"
)

// PromptCategory groups prompts by output medium
type PromptCategory string

const (
	PromptVisual PromptCategory = "Visual"
	PromptCopy   PromptCategory = "Copy"
	PromptVideo  PromptCategory = "Video"
	PromptAudio  PromptCategory = "Audio"
)

// AIPrompt is a reusable generation prompt. It appears both as a top-level
// collection and embedded inside content items.
type AIPrompt struct {
	ID         string         `json:"id" yaml:"id"`
	Title      string         `json:"title" yaml:"title"`
	Type       PromptType     `json:"type" yaml:"type"`
	Prompt     string         `json:"prompt" yaml:"prompt"`
	Tags       []string       `json:"tags" yaml:"tags"`
	Category   PromptCategory `json:"category" yaml:"category"`
	Results    []string       `json:"results" yaml:"results"`
	CreatedAt  time.Time      `json:"created_at" yaml:"created_at"`
	UsageCount int            `json:"usage_count" yaml:"usage_count"`
}

// AIPromptPatch is a partial update for an AIPrompt
type AIPromptPatch struct {
	Title      *string
	Type       *PromptType
	Prompt     *string
	Tags       *[]string
	Category   *PromptCategory
	Results    *[]string
	UsageCount *int
}

// Apply merges the patch onto ap
func (p AIPromptPatch) Apply(ap *AIPrompt) {
	if p.Title != nil {
		ap.Title = *p.Title
	}
	if p.Type != nil {
		ap.Type = *p.Type
	}
	if p.Prompt != nil {
		ap.Prompt = *p.Prompt
	}
	if p.Tags != nil {
		ap.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Category != nil {
		ap.Category = *p.Category
	}
	if p.Results != nil {
		ap.Results = append([]string(nil), (*p.Results)...)
	}
	if p.UsageCount != nil {
		ap.UsageCount = *p.UsageCount
	}
}
