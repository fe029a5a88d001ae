package model

import "time"

// ClientStatus tracks where a client sits in the relationship lifecycle
type ClientStatus string

const (
	ClientNewLead    ClientStatus = "New Lead"
	ClientInProgress ClientStatus = "In Progress"
	ClientActive     ClientStatus = "Active"
	ClientArchived   ClientStatus = "Archived"
)

// CommChannel is the client's preferred communication channel
type CommChannel string

const (
	CommEmail CommChannel = "Email"
	CommPhone CommChannel = "Phone"
	CommSlack CommChannel = "Slack"
	CommTeams CommChannel = "Teams"
)

// OnboardingStage is one of five ordered stages from first contact to done
type OnboardingStage string

const (
	StageInitialContact OnboardingStage = "Initial Contact"
	StageProposalSent   OnboardingStage = "Proposal Sent"
	StageContractSigned OnboardingStage = "Contract Signed"
	StageProjectStarted OnboardingStage = "Project Started"
	StageComplete       OnboardingStage = "Complete"
)

// ContactInfo holds how to reach a client
type ContactInfo struct {
	Email                  string      `json:"email" yaml:"email"`
	Phone                  string      `json:"phone" yaml:"phone"`
	Address                string      `json:"address" yaml:"address"`
	Timezone               string      `json:"timezone" yaml:"timezone"`
	PreferredCommunication CommChannel `json:"preferred_communication" yaml:"preferred_communication"`
}

// ClientNotes is free-form relationship intelligence
type ClientNotes struct {
	LastMeeting   string   `json:"last_meeting" yaml:"last_meeting"`
	Preferences   string   `json:"preferences" yaml:"preferences"`
	RedFlags      string   `json:"red_flags" yaml:"red_flags"`
	BrandKeywords []string `json:"brand_keywords" yaml:"brand_keywords"`
}

// Client represents an agency client
type Client struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Industry        string          `json:"industry" yaml:"industry"`
	Status          ClientStatus    `json:"status" yaml:"status"`
	ContactInfo     ContactInfo     `json:"contact_info" yaml:"contact_info"`
	OnboardingStage OnboardingStage `json:"onboarding_stage" yaml:"onboarding_stage"`
	Notes           ClientNotes     `json:"notes" yaml:"notes"`
	Avatar          string          `json:"avatar" yaml:"avatar"`
	CreatedAt       time.Time       `json:"created_at" yaml:"created_at"`
	PortalAccess    bool            `json:"portal_access" yaml:"portal_access"`
}

// ClientPatch is a partial update for a Client. Nil fields are left unchanged.
// ID and CreatedAt are never patchable.
type ClientPatch struct {
	Name            *string
	Industry        *string
	Status          *ClientStatus
	ContactInfo     *ContactInfo
	OnboardingStage *OnboardingStage
	Notes           *ClientNotes
	Avatar          *string
	PortalAccess    *bool
}

// Apply merges the patch onto c
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ContactInfo != nil {
		c.ContactInfo = *p.ContactInfo
	}
	if p.OnboardingStage != nil {
		c.OnboardingStage = *p.OnboardingStage
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.PortalAccess != nil {
		c.PortalAccess = *p.PortalAccess
	}
}
