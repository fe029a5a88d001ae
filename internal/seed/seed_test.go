package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourcreative/studiodesk/internal/model"
	"github.com/fourcreative/studiodesk/internal/store"
)

func TestDefaultShape(t *testing.T) {
	snap := Default()

	require.Len(t, snap.Clients, 2)
	assert.Equal(t, "Maison Luxe", snap.Clients[0].Name)
	assert.Equal(t, "Atelier Modern", snap.Clients[1].Name)

	require.Len(t, snap.Projects, 1)
	p := snap.Projects[0]
	assert.Equal(t, "1", p.ClientID)
	require.Len(t, p.Tasks, 3)
	for _, task := range p.Tasks {
		assert.Len(t, task.Subtasks, 3)
	}
	require.Len(t, p.Feedback, 1)

	require.Len(t, snap.Invoices, 1)
	assert.Equal(t, "INV-001", snap.Invoices[0].ID)
	assert.Equal(t, model.InvoicePaid, snap.Invoices[0].Status)
	require.NotNil(t, snap.Invoices[0].PaidDate)

	require.Len(t, snap.ArchiveItems, 1)
	assert.Equal(t, 245, snap.ArchiveItems[0].Views)
	assert.Equal(t, 18, snap.ArchiveItems[0].Likes)

	assert.Len(t, snap.Expenses, 2)
	assert.Len(t, snap.ContentItems, 1)
	assert.Len(t, snap.AIPrompts, 1)
	require.Len(t, snap.PlaybookSections, 2)
	assert.Equal(t, 2, snap.PlaybookSections[0].Version)
}

func TestDefaultSeedsInvoiceCounter(t *testing.T) {
	s := store.NewFromSnapshot(Default())

	next := s.AddInvoice(model.Invoice{Client: "Atelier Modern", ClientID: "2", Amount: 8000})
	assert.Equal(t, "INV-002", next.ID)
}

func TestFromFile(t *testing.T) {
	raw := `clients:
  - id: "1"
    name: Maison Luxe
    industry: Fashion
    status: Active
    created_at: 2024-01-01T00:00:00Z
invoices:
  - id: INV-003
    client: Maison Luxe
    client_id: "1"
    amount: 5000
    status: Sent
    date: 2024-02-01T00:00:00Z
    due_date: 2024-03-01T00:00:00Z
playbook_sections:
  - id: "1"
    title: Brand Voice
    category: Brand Bible
    content: We speak with quiet confidence.
    last_updated: 2024-01-15T00:00:00Z
    version: 2
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	snap, err := FromFile(path)
	require.NoError(t, err)

	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Maison Luxe", snap.Clients[0].Name)
	assert.Equal(t, model.ClientActive, snap.Clients[0].Status)

	require.Len(t, snap.Invoices, 1)
	assert.Equal(t, "INV-003", snap.Invoices[0].ID)

	require.Len(t, snap.PlaybookSections, 1)
	assert.Equal(t, model.PlaybookBrandBible, snap.PlaybookSections[0].Category)
	assert.Equal(t, 2, snap.PlaybookSections[0].Version)

	// Omitted collections start empty.
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Expenses)

	// The counter resumes after the highest number in the file.
	s := store.NewFromSnapshot(snap)
	next := s.AddInvoice(model.Invoice{Client: "Maison Luxe", ClientID: "1"})
	assert.Equal(t, "INV-004", next.ID)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clients: {not: [a, list"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed file")
}
