package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fourcreative/studiodesk/internal/stats"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Workspace overview",
	Long:  `Show the studio dashboard: headline numbers, urgent projects and overdue invoices.`,
	RunE:  runOverview,
}

func runOverview(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	clients := st.Clients()
	projects := st.Projects()
	invoices := st.Invoices()
	expenses := st.Expenses()
	content := st.ContentItems()
	now := time.Now()

	fmt.Println()
	fmt.Println(headerStyle.Render("  StudioDesk overview"))
	fmt.Println()
	fmt.Printf("  Clients:        %d\n", len(clients))
	fmt.Printf("  Projects:       %d\n", len(projects))
	fmt.Printf("  Paid revenue:   %.0f\n", stats.PaidRevenue(invoices))
	fmt.Printf("  Expenses:       %.0f\n", stats.TotalExpenses(expenses))
	fmt.Printf("  Profit:         %.0f\n", stats.Profit(invoices, expenses))
	fmt.Printf("  Content (month): %d\n", stats.ScheduledThisMonth(content, now))

	urgent := stats.UrgentProjects(projects, now)
	if len(urgent) > 0 {
		fmt.Println()
		fmt.Println(warnStyle.Render("  Urgent projects:"))
		for _, p := range urgent {
			fmt.Printf("    %s (due %s)\n", p.Name, p.DueDate.Format("2006-01-02"))
		}
	}

	overdue := stats.OverdueInvoices(invoices)
	if len(overdue) > 0 {
		fmt.Println()
		fmt.Println(alertStyle.Render("  Overdue invoices:"))
		for _, inv := range overdue {
			fmt.Printf("    %s %s (%.0f)\n", inv.ID, inv.Client, inv.Amount)
		}
	}

	fmt.Println()
	return nil
}
