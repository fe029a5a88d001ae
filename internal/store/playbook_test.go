package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourcreative/studiodesk/internal/model"
)

func TestAddPlaybookSectionStartsAtVersionOne(t *testing.T) {
	s := New(WithClock(fixedClock("2024-12-05T09:00:00Z")))
	section := s.AddPlaybookSection(model.PlaybookSection{
		Title:    "Brand Voice & Tone",
		Category: model.PlaybookBrandBible,
		Content:  "We speak with quiet confidence.",
		Author:   "Alex Chen",
		Version:  99,
	})

	assert.Equal(t, 1, section.Version)
	assert.Equal(t, time.Date(2024, 12, 5, 9, 0, 0, 0, time.UTC), section.LastUpdated)
	assert.NotEmpty(t, section.ID)
}

func TestUpdatePlaybookSectionBumpsVersion(t *testing.T) {
	clock := time.Date(2024, 12, 5, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return clock }))
	section := s.AddPlaybookSection(model.PlaybookSection{Title: "Client Onboarding", Category: model.PlaybookOperatingSystem})

	clock = clock.Add(time.Hour)
	s.UpdatePlaybookSection(section.ID, model.PlaybookSectionPatch{Content: ptr("Step one: kickoff call.")})

	got, ok := s.PlaybookSection(section.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, clock, got.LastUpdated)
	assert.Equal(t, "Step one: kickoff call.", got.Content)
	assert.Equal(t, "Client Onboarding", got.Title)
}

func TestEmptyPatchStillBumpsVersion(t *testing.T) {
	clock := time.Date(2024, 12, 5, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return clock }))
	section := s.AddPlaybookSection(model.PlaybookSection{Title: "Philosophy"})

	// Every update is a new revision, content change or not.
	clock = clock.Add(2 * time.Hour)
	s.UpdatePlaybookSection(section.ID, model.PlaybookSectionPatch{})

	got, _ := s.PlaybookSection(section.ID)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, clock, got.LastUpdated)
}

func TestUpdateMissingPlaybookSectionIsNoOp(t *testing.T) {
	s := New()
	s.AddPlaybookSection(model.PlaybookSection{Title: "keep"})

	before := s.PlaybookSections()
	s.UpdatePlaybookSection("missing", model.PlaybookSectionPatch{Title: ptr("x")})
	assert.Equal(t, before, s.PlaybookSections())
}

func TestDeletePlaybookSection(t *testing.T) {
	s := New()
	a := s.AddPlaybookSection(model.PlaybookSection{Title: "a"})
	b := s.AddPlaybookSection(model.PlaybookSection{Title: "b"})

	s.DeletePlaybookSection(a.ID)

	sections := s.PlaybookSections()
	require.Len(t, sections, 1)
	assert.Equal(t, b.ID, sections[0].ID)
}
