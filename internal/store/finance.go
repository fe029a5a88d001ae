package store

import (
	"github.com/fourcreative/studiodesk/internal/logger"
	"github.com/fourcreative/studiodesk/internal/model"
)

// AddInvoice appends a new invoice with the next INV-NNN number. The
// counter is monotonic, so numbers freed by a delete are never reissued.
// Amount and line items are taken as given; the store does not check that
// they agree.
func (s *Store) AddInvoice(inv model.Invoice) model.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoiceSeq++
	inv.ID = formatInvoiceID(s.invoiceSeq)
	s.invoices = append(s.invoices, cloneInvoice(inv))
	logger.Debug("invoice added", logger.F("id", inv.ID), logger.F("amount", inv.Amount))
	return cloneInvoice(inv)
}

// UpdateInvoice shallow-merges the patch onto the invoice with the given id
func (s *Store) UpdateInvoice(id string, patch model.InvoicePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID == id {
			inv := cloneInvoice(s.invoices[i])
			patch.Apply(&inv)
			s.invoices[i] = cloneInvoice(inv)
			return
		}
	}
}

// DeleteInvoice removes the invoice with the given id
func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.invoices[:0]
	for _, inv := range s.invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	s.invoices = kept
}

// Invoices returns every invoice in insertion order
func (s *Store) Invoices() []model.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out
}

// Invoice returns the invoice with the given id
func (s *Store) Invoice(id string) (model.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return cloneInvoice(inv), true
		}
	}
	return model.Invoice{}, false
}

// AddExpense appends a new expense
func (s *Store) AddExpense(e model.Expense) model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = newID()
	s.expenses = append(s.expenses, e)
	return e
}

// UpdateExpense shallow-merges the patch onto the expense with the given id
func (s *Store) UpdateExpense(id string, patch model.ExpensePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			patch.Apply(&s.expenses[i])
			return
		}
	}
}

// DeleteExpense removes the expense with the given id
func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
}

// Expenses returns every expense in insertion order
func (s *Store) Expenses() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Expense(nil), s.expenses...)
}
