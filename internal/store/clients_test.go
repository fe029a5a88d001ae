package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourcreative/studiodesk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func sampleClient() model.Client {
	return model.Client{
		Name:     "Maison Luxe",
		Industry: "Fashion",
		Status:   model.ClientActive,
		ContactInfo: model.ContactInfo{
			Email:                  "contact@maisonluxe.com",
			Phone:                  "+1 (555) 123-4567",
			Timezone:               "EST",
			PreferredCommunication: model.CommEmail,
		},
		OnboardingStage: model.StageProjectStarted,
		Notes: model.ClientNotes{
			LastMeeting:   "kickoff",
			BrandKeywords: []string{"luxury", "minimal"},
		},
		Avatar:       "https://example.com/avatar.jpg",
		PortalAccess: true,
	}
}

func TestUpdateClientIsPartialMerge(t *testing.T) {
	s := New()
	c := s.AddClient(sampleClient())

	s.UpdateClient(c.ID, model.ClientPatch{Status: ptr(model.ClientArchived)})

	got, ok := s.Client(c.ID)
	require.True(t, ok)
	assert.Equal(t, model.ClientArchived, got.Status)

	// Every other field keeps its prior value.
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Industry, got.Industry)
	assert.Equal(t, c.ContactInfo, got.ContactInfo)
	assert.Equal(t, c.OnboardingStage, got.OnboardingStage)
	assert.Equal(t, c.Notes, got.Notes)
	assert.Equal(t, c.Avatar, got.Avatar)
	assert.Equal(t, c.CreatedAt, got.CreatedAt)
	assert.Equal(t, c.PortalAccess, got.PortalAccess)
}

func TestUpdateMissingClientIsNoOp(t *testing.T) {
	s := New()
	s.AddClient(sampleClient())
	before := s.Clients()

	assert.NotPanics(t, func() {
		s.UpdateClient("nonexistent", model.ClientPatch{Name: ptr("Changed")})
	})

	assert.Equal(t, before, s.Clients())
}

func TestDeleteMissingClientIsNoOp(t *testing.T) {
	s := New()
	s.AddClient(sampleClient())
	before := s.Clients()

	assert.NotPanics(t, func() { s.DeleteClient("nonexistent") })
	assert.Equal(t, before, s.Clients())
}

func TestDeleteClientCascadesToProjectsAndInvoices(t *testing.T) {
	s := New()
	doomed := s.AddClient(model.Client{Name: "Doomed"})
	kept := s.AddClient(model.Client{Name: "Kept"})

	s.AddProject(model.Project{Name: "D1", ClientID: doomed.ID})
	s.AddProject(model.Project{Name: "D2", ClientID: doomed.ID})
	s.AddProject(model.Project{Name: "K1", ClientID: kept.ID})
	s.AddInvoice(model.Invoice{ClientID: doomed.ID, Amount: 1000})
	s.AddInvoice(model.Invoice{ClientID: kept.ID, Amount: 2000})

	s.DeleteClient(doomed.ID)

	_, ok := s.Client(doomed.ID)
	assert.False(t, ok)

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "K1", projects[0].Name)

	invoices := s.Invoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, kept.ID, invoices[0].ClientID)
}

func TestDeleteClientCascadeIsOneLevel(t *testing.T) {
	s := New()
	c := s.AddClient(model.Client{Name: "C"})
	p := s.AddProject(model.Project{Name: "P", ClientID: c.ID})
	s.AddArchiveItem(model.ArchiveItem{Title: "Moodboard", ClientID: c.ID, ProjectID: p.ID})
	s.AddContentItem(model.ContentItem{Title: "Teaser", ProjectID: p.ID})
	s.AddExpense(model.Expense{Description: "Gear", ProjectID: p.ID})

	s.DeleteClient(c.ID)

	// Archive, content and expenses keep their now-dangling references.
	require.Len(t, s.ArchiveItems(), 1)
	assert.Equal(t, c.ID, s.ArchiveItems()[0].ClientID)
	require.Len(t, s.ContentItems(), 1)
	require.Len(t, s.Expenses(), 1)
}
