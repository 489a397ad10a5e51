package cli

import (
	"github.com/spf13/cobra"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/unlock"
)

// catalogEntry summarizes one assessment for the catalog listing.
type catalogEntry struct {
	Type       string `json:"type"`
	Questions  int    `json:"scoreableQuestions"`
	CreditCost int    `json:"creditCost"`
	Requires   string `json:"requires,omitempty"`
}

func newCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the assessments and what completing them unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := assessment.DefaultRegistry()

			entries := make([]catalogEntry, 0, len(assessment.AllTypes()))
			for _, t := range assessment.AllTypes() {
				entry := catalogEntry{Type: string(t), CreditCost: unlock.CreditCost(t)}
				if c, ok := registry.Catalog(t); ok {
					entry.Questions = c.ScoreableQuestions()
				}
				if rule, ok := unlock.RuleFor(t); ok && rule.Requires != "" {
					entry.Requires = string(rule.Requires)
				}
				entries = append(entries, entry)
			}

			if opts.JSONOutput {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"assessments": entries,
					"resources":   unlock.AllResources(),
				})
			}

			cmd.Println("Assessments:")
			for _, e := range entries {
				requires := ""
				if e.Requires != "" {
					requires = "  requires " + e.Requires
				}
				cmd.Printf("  %-8s %3d questions  %d credit(s)%s\n", e.Type, e.Questions, e.CreditCost, requires)
			}

			cmd.Println("\nResources:")
			for _, r := range unlock.AllResources() {
				cmd.Printf("  %-26s %s (%s, unlocked by %s)\n", r.ID, r.Title, r.Format, r.UnlockedBy)
			}
			return nil
		},
	}
}
