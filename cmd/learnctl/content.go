package main

import (
	"fmt"

	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/spf13/cobra"
)

func (c *cli) sharedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "shared",
		Short: "List recently shared content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetSharedContent(cmd.Context(), limit))
			}
			items, err := c.client.SharedContent.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of items (server default when 0)")

	return cmd
}

// catalogFlags is the union of every catalog filter; each kind reads the
// fields it understands.
type catalogFlags struct {
	tone       string
	grade      int
	subject    string
	language   string
	difficulty string
	gradeLevel int
}

var catalogKinds = []string{"tutor-scripts", "coding-problems", "ar-problems", "stories", "voice-quizzes"}

func (c *cli) catalogCmd() *cobra.Command {
	var f catalogFlags

	cmd := &cobra.Command{
		Use:       "catalog KIND",
		Short:     "List a content catalog",
		Long:      fmt.Sprintf("List a content catalog. KIND is one of %v.", catalogKinds),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: catalogKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.listCatalog(cmd, args[0], f)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().StringVar(&f.tone, "tone", "", "tutor script tone")
	cmd.Flags().IntVar(&f.grade, "grade", 0, "grade")
	cmd.Flags().StringVar(&f.subject, "subject", "", "subject")
	cmd.Flags().StringVar(&f.language, "language", "", "language")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "difficulty")
	cmd.Flags().IntVar(&f.gradeLevel, "grade-level", 0, "story grade level")

	return cmd
}

func (c *cli) listCatalog(cmd *cobra.Command, kind string, f catalogFlags) (any, error) {
	ctx := cmd.Context()

	switch kind {
	case "tutor-scripts":
		if c.legacy {
			return c.shim.GetTutorScripts(ctx, f.tone, f.grade, f.subject), nil
		}
		return c.client.TutorScripts.List(ctx, models.TutorScriptFilter{Tone: f.tone, Grade: f.grade, Subject: f.subject})
	case "coding-problems":
		if c.legacy {
			return c.shim.GetCodingProblems(ctx, f.language, f.difficulty), nil
		}
		return c.client.CodingProblems.List(ctx, models.CodingProblemFilter{Language: f.language, Difficulty: f.difficulty})
	case "ar-problems":
		if c.legacy {
			return c.shim.GetARProblems(ctx, f.subject, f.grade), nil
		}
		return c.client.ARProblems.List(ctx, models.ARProblemFilter{Subject: f.subject, Grade: f.grade})
	case "stories":
		if c.legacy {
			return c.shim.GetStories(ctx, f.language, f.gradeLevel), nil
		}
		return c.client.Stories.List(ctx, models.StoryFilter{Language: f.language, GradeLevel: f.gradeLevel})
	case "voice-quizzes":
		if c.legacy {
			return c.shim.GetVoiceQuizzes(ctx, f.language, f.difficulty, f.subject), nil
		}
		return c.client.VoiceQuizzes.List(ctx, models.VoiceQuizFilter{Language: f.language, Difficulty: f.difficulty, Subject: f.subject})
	default:
		return nil, fmt.Errorf("unknown catalog %q", kind)
	}
}
