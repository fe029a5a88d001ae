package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourcreative/studiodesk/internal/model"
	"github.com/fourcreative/studiodesk/internal/stats"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
	Long:  `List, add, and remove agency clients.`,
}

var clientListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all clients",
	RunE:    runClientList,
}

var clientAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Long: `Add a client to the workspace.

Examples:
  studiodesk client add "Maison Luxe" --industry Fashion
  studiodesk client add "Atelier Modern" --industry Architecture --status "New Lead"`,
	Args: cobra.ExactArgs(1),
	RunE: runClientAdd,
}

var clientDeleteCmd = &cobra.Command{
	Use:     "delete [client-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a client and its projects and invoices",
	Args:    cobra.ExactArgs(1),
	RunE:    runClientDelete,
}

var (
	clientIndustry string
	clientStatus   string
)

func init() {
	clientAddCmd.Flags().StringVarP(&clientIndustry, "industry", "i", "", "Client industry")
	clientAddCmd.Flags().StringVarP(&clientStatus, "status", "s", string(model.ClientNewLead), "Client status")

	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}

func runClientList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	clients := st.Clients()
	if len(clients) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	projects := st.Projects()
	invoices := st.Invoices()

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-14s  %-22s  %-14s  %-8s  %10s", "ID", "Name", "Industry", "Active", "Revenue")))
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 78)))
	for _, c := range clients {
		summary := stats.SummarizeClient(c.ID, projects, invoices)
		line := fmt.Sprintf("  %-14s  %-22s  %-14s  %-8d  %10.0f", c.ID, c.Name, c.Industry, summary.ActiveProjects, summary.Revenue)
		if summary.OverdueInvoices > 0 {
			line += alertStyle.Render(fmt.Sprintf("  %d overdue", summary.OverdueInvoices))
		}
		fmt.Println(line)
	}
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 78)))
	fmt.Printf("  %d clients\n\n", len(clients))
	return nil
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	c := st.AddClient(model.Client{
		Name:     args[0],
		Industry: clientIndustry,
		Status:   model.ClientStatus(clientStatus),
	})

	fmt.Printf("%s Added client: %s (id: %s)\n", okStyle.Render("✓"), c.Name, c.ID)
	return nil
}

func runClientDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	id := args[0]
	c, ok := st.Client(id)
	if !ok {
		return fmt.Errorf("client not found: %s", id)
	}

	st.DeleteClient(id)
	fmt.Printf("%s Deleted client %s and its projects and invoices\n", warnStyle.Render("✗"), c.Name)
	return nil
}
