// Package store holds the session-scoped workspace data: eight ordered
// collections with uniform add/update/delete operations, the cascade rule
// for client deletion, and nothing else. Mutations never fail; updates and
// deletes against an unknown id are silent no-ops so consumers stay simple.
package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fourcreative/studiodesk/internal/model"
)

// Store is the in-memory workspace state. Construct one per session with
// New or NewFromSnapshot and pass it to consumers explicitly; there is no
// package-level instance.
type Store struct {
	mu    sync.Mutex
	nowFn func() time.Time

	// invoiceSeq is monotonic and never decremented, so deleting an
	// invoice cannot recycle its number.
	invoiceSeq int

	clients      []model.Client
	projects     []model.Project
	archiveItems []model.ArchiveItem
	invoices     []model.Invoice
	expenses     []model.Expense
	contentItems []model.ContentItem
	aiPrompts    []model.AIPrompt
	playbook     []model.PlaybookSection
}

// Snapshot is a full copy of every collection, used for seeding and for
// exporting the session state.
type Snapshot struct {
	Clients          []model.Client          `json:"clients" yaml:"clients"`
	Projects         []model.Project         `json:"projects" yaml:"projects"`
	ArchiveItems     []model.ArchiveItem     `json:"archive_items" yaml:"archive_items"`
	Invoices         []model.Invoice         `json:"invoices" yaml:"invoices"`
	Expenses         []model.Expense         `json:"expenses" yaml:"expenses"`
	ContentItems     []model.ContentItem     `json:"content_items" yaml:"content_items"`
	AIPrompts        []model.AIPrompt        `json:"ai_prompts" yaml:"ai_prompts"`
	PlaybookSections []model.PlaybookSection `json:"playbook_sections" yaml:"playbook_sections"`
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used for created/updated stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.nowFn = now }
}

// New returns an empty store
func New(opts ...Option) *Store {
	s := &Store{
		nowFn: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromSnapshot returns a store preloaded with snap. The invoice counter
// resumes after the highest INV number already present.
func NewFromSnapshot(snap Snapshot, opts ...Option) *Store {
	s := New(opts...)
	for _, c := range snap.Clients {
		s.clients = append(s.clients, cloneClient(c))
	}
	for _, p := range snap.Projects {
		s.projects = append(s.projects, cloneProject(p))
	}
	for _, a := range snap.ArchiveItems {
		s.archiveItems = append(s.archiveItems, cloneArchiveItem(a))
	}
	for _, inv := range snap.Invoices {
		s.invoices = append(s.invoices, cloneInvoice(inv))
		if n, ok := invoiceNumber(inv.ID); ok && n > s.invoiceSeq {
			s.invoiceSeq = n
		}
	}
	for _, e := range snap.Expenses {
		s.expenses = append(s.expenses, e)
	}
	for _, ci := range snap.ContentItems {
		s.contentItems = append(s.contentItems, cloneContentItem(ci))
	}
	for _, ap := range snap.AIPrompts {
		s.aiPrompts = append(s.aiPrompts, cloneAIPrompt(ap))
	}
	for _, ps := range snap.PlaybookSections {
		s.playbook = append(s.playbook, clonePlaybookSection(ps))
	}
	return s
}

// Snapshot returns a deep copy of the full store state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{}
	for _, c := range s.clients {
		snap.Clients = append(snap.Clients, cloneClient(c))
	}
	for _, p := range s.projects {
		snap.Projects = append(snap.Projects, cloneProject(p))
	}
	for _, a := range s.archiveItems {
		snap.ArchiveItems = append(snap.ArchiveItems, cloneArchiveItem(a))
	}
	for _, inv := range s.invoices {
		snap.Invoices = append(snap.Invoices, cloneInvoice(inv))
	}
	snap.Expenses = append(snap.Expenses, s.expenses...)
	for _, ci := range s.contentItems {
		snap.ContentItems = append(snap.ContentItems, cloneContentItem(ci))
	}
	for _, ap := range s.aiPrompts {
		snap.AIPrompts = append(snap.AIPrompts, cloneAIPrompt(ap))
	}
	for _, ps := range s.playbook {
		snap.PlaybookSections = append(snap.PlaybookSections, clonePlaybookSection(ps))
	}
	return snap
}

// newID returns a short random identifier. Uniqueness is probabilistic;
// no collision check is performed.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

const invoicePrefix = "INV-"

func invoiceNumber(id string) (int, bool) {
	rest, found := strings.CutPrefix(id, invoicePrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatInvoiceID(n int) string {
	return invoicePrefix + leftPad(strconv.Itoa(n), 3)
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
