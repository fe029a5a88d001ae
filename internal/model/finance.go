package model

import "time"

// InvoiceStatus is the billing state of an invoice. The store never
// auto-transitions Sent to Overdue; callers set status explicitly.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoiceSent      InvoiceStatus = "Sent"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// InvoiceTemplate selects the billing arrangement an invoice came from
type InvoiceTemplate string

const (
	TemplateStandard  InvoiceTemplate = "Standard"
	TemplateRetainer  InvoiceTemplate = "Retainer"
	TemplateMilestone InvoiceTemplate = "Milestone"
)

// LineCategory classifies an invoice line item
type LineCategory string

const (
	LineCreative     LineCategory = "Creative"
	LineTech         LineCategory = "Tech"
	LineProduction   LineCategory = "Production"
	LineConsultation LineCategory = "Consultation"
)

// InvoiceItem is one billable line. Amount is quantity times rate by
// convention; the caller computes it, the store does not.
type InvoiceItem struct {
	ID          string       `json:"id" yaml:"id"`
	Description string       `json:"description" yaml:"description"`
	Quantity    float64      `json:"quantity" yaml:"quantity"`
	Rate        float64      `json:"rate" yaml:"rate"`
	Amount      float64      `json:"amount" yaml:"amount"`
	Category    LineCategory `json:"category" yaml:"category"`
}

// Invoice bills a client, optionally tied to a project. IDs follow the
// INV-NNN scheme assigned by the store.
type Invoice struct {
	ID            string          `json:"id" yaml:"id"`
	Client        string          `json:"client" yaml:"client"`
	ClientID      string          `json:"client_id" yaml:"client_id"`
	ProjectID     string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Amount        float64         `json:"amount" yaml:"amount"`
	Status        InvoiceStatus   `json:"status" yaml:"status"`
	Date          time.Time       `json:"date" yaml:"date"`
	DueDate       time.Time       `json:"due_date" yaml:"due_date"`
	Items         []InvoiceItem   `json:"items" yaml:"items"`
	Notes         string          `json:"notes" yaml:"notes"`
	Template      InvoiceTemplate `json:"template" yaml:"template"`
	PaymentMethod string          `json:"payment_method,omitempty" yaml:"payment_method,omitempty"`
	PaidDate      *time.Time      `json:"paid_date,omitempty" yaml:"paid_date,omitempty"`
}

// InvoicePatch is a partial update for an Invoice
type InvoicePatch struct {
	Client        *string
	ClientID      *string
	ProjectID     *string
	Amount        *float64
	Status        *InvoiceStatus
	Date          *time.Time
	DueDate       *time.Time
	Items         *[]InvoiceItem
	Notes         *string
	Template      *InvoiceTemplate
	PaymentMethod *string
	PaidDate      *time.Time
}

// Apply merges the patch onto inv
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.Client != nil {
		inv.Client = *p.Client
	}
	if p.ClientID != nil {
		inv.ClientID = *p.ClientID
	}
	if p.ProjectID != nil {
		inv.ProjectID = *p.ProjectID
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Date != nil {
		inv.Date = *p.Date
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Items != nil {
		inv.Items = append([]InvoiceItem(nil), (*p.Items)...)
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
	if p.Template != nil {
		inv.Template = *p.Template
	}
	if p.PaymentMethod != nil {
		inv.PaymentMethod = *p.PaymentMethod
	}
	if p.PaidDate != nil {
		d := *p.PaidDate
		inv.PaidDate = &d
	}
}

// ExpenseCategory classifies studio spend
type ExpenseCategory string

const (
	ExpenseSoftware  ExpenseCategory = "Software"
	ExpenseHardware  ExpenseCategory = "Hardware"
	ExpenseTravel    ExpenseCategory = "Travel"
	ExpenseMarketing ExpenseCategory = "Marketing"
	ExpenseOffice    ExpenseCategory = "Office"
	ExpenseOther     ExpenseCategory = "Other"
)

// Expense is a cost record, optionally tied to a project
type Expense struct {
	ID          string          `json:"id" yaml:"id"`
	Description string          `json:"description" yaml:"description"`
	Amount      float64         `json:"amount" yaml:"amount"`
	Category    ExpenseCategory `json:"category" yaml:"category"`
	Date        time.Time       `json:"date" yaml:"date"`
	Recurring   bool            `json:"recurring" yaml:"recurring"`
	Vendor      string          `json:"vendor" yaml:"vendor"`
	ProjectID   string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Receipt     string          `json:"receipt,omitempty" yaml:"receipt,omitempty"`
}

// ExpensePatch is a partial update for an Expense
type ExpensePatch struct {
	Description *string
	Amount      *float64
	Category    *ExpenseCategory
	Date        *time.Time
	Recurring   *bool
	Vendor      *string
	ProjectID   *string
	Receipt     *string
}

// Apply merges the patch onto e
func (p ExpensePatch) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
	if p.Vendor != nil {
		e.Vendor = *p.Vendor
	}
	if p.ProjectID != nil {
		e.ProjectID = *p.ProjectID
	}
	if p.Receipt != nil {
		e.Receipt = *p.Receipt
	}
}
