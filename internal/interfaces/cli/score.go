package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/content"
	"github.com/culturiq/engine/internal/domain/demographics"
	"github.com/culturiq/engine/internal/engine/recommend"
	"github.com/culturiq/engine/internal/engine/scoring"
)

// scoreOutput is what the score command emits.
type scoreOutput struct {
	Result          *assessment.Result         `json:"result"`
	Demographics    demographics.Demographics  `json:"demographics"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func newScoreCommand(opts *RootOptions) *cobra.Command {
	var (
		assessmentType string
		answersPath    string
		respondentID   string
	)

	cmd := &cobra.Command{
		Use:     "score",
		Aliases: []string{"preview"},
		Short:   "Score an answer file locally",
		Long: "Score runs the full pipeline — scoring, interpretation, and\n" +
			"recommendations — against a JSON answer file without touching any\n" +
			"backing service.  Nothing is persisted and no credits move.",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := readAnswers(answersPath)
			if err != nil {
				return err
			}

			t, ok := assessment.ParseType(assessmentType)
			if !ok {
				return fmt.Errorf("unknown assessment type %q", assessmentType)
			}

			engine := scoring.NewEngine(assessment.DefaultRegistry())
			matcher := recommend.NewMatcher(content.DefaultVariantRegistry(),
				recommend.WithCaseStudies(recommend.NewCaseStudyMatcher(content.DefaultCaseStudyRegistry())))

			result, err := engine.Score(respondentID, t, answers)
			if err != nil {
				return err
			}
			profile := demographics.Extract(answers)
			recs := matcher.Match(result, profile)

			out := scoreOutput{Result: result, Demographics: profile, Recommendations: recs}
			if opts.JSONOutput {
				return printJSON(cmd.OutOrStdout(), out)
			}
			printScoreText(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&assessmentType, "type", "t", "cirf", "assessment type to score")
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "path to a JSON answer file (required)")
	cmd.Flags().StringVar(&respondentID, "respondent", "local", "respondent id stamped on the result")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func readAnswers(path string) (assessment.AnswerMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer file: %w", err)
	}
	var answers assessment.AnswerMap
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answer file: %w", err)
	}
	return answers, nil
}

func printScoreText(cmd *cobra.Command, out scoreOutput) {
	r := out.Result
	cmd.Printf("%s — %.1f / 100 (%s)\n", r.Type, r.OverallScore, r.Interpretation.Level)
	if r.SynergyBonus > 0 {
		cmd.Printf("Synergy bonus: +%.1f%% from %d active pairs\n", r.SynergyBonus, len(r.ActiveSynergies))
	}

	sections := make([]assessment.SectionScore, 0, len(r.SectionScores))
	for _, s := range r.SectionScores {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Section < sections[j].Section })

	cmd.Println("\nSections:")
	for _, s := range sections {
		gate := ""
		if !s.Complete {
			gate = " (incomplete, excluded)"
		}
		cmd.Printf("  %-28s %6.1f  %d/%d answered%s\n", s.Label, s.Score, s.Answered, s.Total, gate)
	}

	if len(out.Recommendations) > 0 {
		cmd.Println("\nRecommendations:")
		for _, rec := range out.Recommendations {
			cmd.Printf("  %d. %s (%s, %d%% -> %d%%)\n",
				rec.Priority, rec.Title, rec.ConstructLabel, rec.CurrentScore, rec.TargetScore)
		}
	}
}
