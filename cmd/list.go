package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stefanomuraro/design-patterns/internal/demo"
)

var (
	listTitleStyle = lipgloss.NewStyle().Bold(true)
	listNameStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"})
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available pattern demos",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, listTitleStyle.Render("Available demos"))
			for _, d := range demo.All() {
				name := listNameStyle.Render(fmt.Sprintf("%-10s", d.Name))
				fmt.Fprintf(out, "  %s %s\n", name, d.Summary)
			}
		},
	}
}
