package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourcreative/studiodesk/internal/stats"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect projects",
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	RunE:    runProjectList,
}

var projectTasksCmd = &cobra.Command{
	Use:   "tasks [project-id]",
	Short: "Show a project's task list",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectTasks,
}

func init() {
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectTasksCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	projects := st.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-14s  %-30s  %-18s  %-12s  %s", "ID", "Name", "Client", "Status", "Tasks")))
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 90)))
	for _, p := range projects {
		done, total := stats.TaskCompletion(p)
		fmt.Printf("  %-14s  %-30s  %-18s  %-12s  %d/%d (%.0f%%)\n",
			p.ID, p.Name, p.Client, p.Status, done, total, stats.CompletionRatio(p)*100)
	}
	fmt.Println(mutedStyle.Render(strings.Repeat("─", 90)))
	fmt.Printf("  %d projects\n\n", len(projects))
	return nil
}

func runProjectTasks(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	p, ok := st.Project(args[0])
	if !ok {
		return fmt.Errorf("project not found: %s", args[0])
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("  " + p.Name))
	for _, t := range p.Tasks {
		mark := mutedStyle.Render("◻")
		if t.Completed {
			mark = okStyle.Render("✓")
		}
		fmt.Printf("  %s %s (%s, due %s)\n", mark, t.Title, t.Priority, t.DueDate.Format("2006-01-02"))
		for _, sub := range t.Subtasks {
			subMark := " "
			if sub.Completed {
				subMark = "x"
			}
			fmt.Printf("      [%s] %s\n", subMark, sub.Title)
		}
	}
	fmt.Println()
	return nil
}
