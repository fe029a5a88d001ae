package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourcreative/studiodesk/internal/model"
	"github.com/fourcreative/studiodesk/internal/stats"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Inspect invoices",
}

var invoiceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all invoices",
	RunE:    runInvoiceList,
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Inspect expenses",
}

var expenseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all expenses",
	RunE:    runExpenseList,
}

func init() {
	invoiceCmd.AddCommand(invoiceListCmd)
	expenseCmd.AddCommand(expenseListCmd)
}

func invoiceStatusStyle(status model.InvoiceStatus) string {
	switch status {
	case model.InvoicePaid:
		return okStyle.Render(string(status))
	case model.InvoiceOverdue:
		return alertStyle.Render(string(status))
	case model.InvoiceSent:
		return warnStyle.Render(string(status))
	default:
		return mutedStyle.Render(string(status))
	}
}

func runInvoiceList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	invoices := st.Invoices()
	if len(invoices) == 0 {
		fmt.Println("No invoices found.")
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-10s  %-20s  %10s  %-10s  %s", "ID", "Client", "Amount", "Due", "Status")))
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 70)))
	for _, inv := range invoices {
		fmt.Printf("  %-10s  %-20s  %10.0f  %-10s  %s\n",
			inv.ID, inv.Client, inv.Amount, inv.DueDate.Format("2006-01-02"), invoiceStatusStyle(inv.Status))
	}
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 70)))
	fmt.Printf("  paid revenue: %.0f\n\n", stats.PaidRevenue(invoices))
	return nil
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	expenses := st.Expenses()
	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-14s  %-28s  %10s  %-10s  %s", "ID", "Description", "Amount", "Category", "Vendor")))
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 82)))
	for _, e := range expenses {
		desc := e.Description
		if e.Recurring {
			desc += mutedStyle.Render(" (recurring)")
		}
		fmt.Printf("  %-14s  %-28s  %10.0f  %-10s  %s\n", e.ID, desc, e.Amount, e.Category, e.Vendor)
	}
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 82)))
	fmt.Printf("  total: %.0f\n\n", stats.TotalExpenses(expenses))
	return nil
}
