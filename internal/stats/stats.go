// Package stats computes display summaries from collection snapshots.
// Every function is pure and recomputed per call; the collections are
// small and mutation-driven, so nothing here caches.
package stats

import (
	"time"

	"github.com/fourcreative/studiodesk/internal/model"
)

// ClientRevenue sums invoice amounts for a client across every status.
// Filter by status separately when "paid revenue" is intended.
func ClientRevenue(invoices []model.Invoice, clientID string) float64 {
	var sum float64
	for _, inv := range invoices {
		if inv.ClientID == clientID {
			sum += inv.Amount
		}
	}
	return sum
}

// ClientPaidRevenue sums only paid invoice amounts for a client
func ClientPaidRevenue(invoices []model.Invoice, clientID string) float64 {
	var sum float64
	for _, inv := range invoices {
		if inv.ClientID == clientID && inv.Status == model.InvoicePaid {
			sum += inv.Amount
		}
	}
	return sum
}

// PaidRevenue sums paid invoice amounts across all clients
func PaidRevenue(invoices []model.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		if inv.Status == model.InvoicePaid {
			sum += inv.Amount
		}
	}
	return sum
}

// ActiveProjectCount counts a client's projects that are neither archived
// nor live.
func ActiveProjectCount(projects []model.Project, clientID string) int {
	n := 0
	for _, p := range projects {
		if p.ClientID == clientID && p.Status != model.ProjectArchived && p.Status != model.ProjectLive {
			n++
		}
	}
	return n
}

// OverdueInvoices returns invoices whose status is exactly Overdue. The
// store never auto-transitions Sent based on dates; overdue is a manual
// status set by the caller.
func OverdueInvoices(invoices []model.Invoice) []model.Invoice {
	var out []model.Invoice
	for _, inv := range invoices {
		if inv.Status == model.InvoiceOverdue {
			out = append(out, inv)
		}
	}
	return out
}

// ClientOverdueCount counts a client's overdue invoices
func ClientOverdueCount(invoices []model.Invoice, clientID string) int {
	n := 0
	for _, inv := range invoices {
		if inv.ClientID == clientID && inv.Status == model.InvoiceOverdue {
			n++
		}
	}
	return n
}

// UrgentProjects returns projects due within seven calendar days of now
// (inclusive, and including already-overdue ones), excluding live and
// archived projects. The comparison uses calendar days, not sub-day
// precision.
func UrgentProjects(projects []model.Project, now time.Time) []model.Project {
	var out []model.Project
	for _, p := range projects {
		if p.Status == model.ProjectLive || p.Status == model.ProjectArchived {
			continue
		}
		if daysUntil(now, p.DueDate) <= 7 {
			out = append(out, p)
		}
	}
	return out
}

func daysUntil(now, due time.Time) int {
	nd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dd := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(dd.Sub(nd).Hours() / 24)
}

// TaskCompletion returns completed and total task counts for a project
func TaskCompletion(p model.Project) (completed, total int) {
	for _, t := range p.Tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, len(p.Tasks)
}

// CompletionRatio returns the fraction of completed tasks, with zero
// tasks reported as 0 rather than NaN.
func CompletionRatio(p model.Project) float64 {
	completed, total := TaskCompletion(p)
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// TotalExpenses sums all expense amounts
func TotalExpenses(expenses []model.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// Profit is paid revenue minus total expenses
func Profit(invoices []model.Invoice, expenses []model.Expense) float64 {
	return PaidRevenue(invoices) - TotalExpenses(expenses)
}

// ScheduledThisMonth counts content items scheduled in the same calendar
// month as now.
func ScheduledThisMonth(items []model.ContentItem, now time.Time) int {
	n := 0
	for _, ci := range items {
		if ci.ScheduledDate == nil {
			continue
		}
		if ci.ScheduledDate.Year() == now.Year() && ci.ScheduledDate.Month() == now.Month() {
			n++
		}
	}
	return n
}

// ClientSummary bundles the per-client numbers the client views display
type ClientSummary struct {
	Projects        int
	ActiveProjects  int
	Revenue         float64
	OverdueInvoices int
}

// SummarizeClient computes a client's summary from the current snapshots
func SummarizeClient(clientID string, projects []model.Project, invoices []model.Invoice) ClientSummary {
	s := ClientSummary{
		ActiveProjects:  ActiveProjectCount(projects, clientID),
		Revenue:         ClientRevenue(invoices, clientID),
		OverdueInvoices: ClientOverdueCount(invoices, clientID),
	}
	for _, p := range projects {
		if p.ClientID == clientID {
			s.Projects++
		}
	}
	return s
}
