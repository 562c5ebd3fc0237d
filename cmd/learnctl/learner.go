package main

import (
	"github.com/RubachokBoss/learnbook/internal/models"
	"github.com/spf13/cobra"
)

func (c *cli) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and write user preferences",
	}

	get := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user's preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetUserPreferences(cmd.Context(), args[0]))
			}
			prefs, err := c.client.Preferences.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), prefs)
		},
	}

	var prefs models.UserPreferences
	save := &cobra.Command{
		Use:   "save USER_ID",
		Short: "Create or replace a user's preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs.UserID = args[0]
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.SaveUserPreferences(cmd.Context(), &prefs))
			}
			saved, err := c.client.Preferences.Save(cmd.Context(), &prefs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), saved)
		},
	}
	save.Flags().StringVar(&prefs.PreferredSubject, "subject", "", "preferred subject")
	save.Flags().IntVar(&prefs.PreferredDifficulty, "difficulty", 0, "preferred difficulty")
	save.Flags().StringVar(&prefs.PreferredLanguage, "language", "", "preferred language")
	save.Flags().StringVar(&prefs.LearningStyle, "style", "", "learning style")
	save.Flags().IntVar(&prefs.DailyGoalMinutes, "daily-goal", 0, "daily goal in minutes")

	cmd.AddCommand(get, save)
	return cmd
}

func (c *cli) progressCmd() *cobra.Command {
	var filter models.ProgressFilter

	cmd := &cobra.Command{
		Use:   "progress USER_ID",
		Short: "List a user's progress rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetUserProgress(cmd.Context(), args[0], filter.Subject, filter.Grade))
			}
			rows, err := c.client.Progress.Get(cmd.Context(), args[0], filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&filter.Subject, "subject", "", "filter by subject")
	cmd.Flags().IntVar(&filter.Grade, "grade", 0, "filter by grade")

	return cmd
}

func (c *cli) achievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements USER_ID",
		Short: "List a user's achievements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.legacy {
				return printJSON(cmd.OutOrStdout(), c.shim.GetUserAchievements(cmd.Context(), args[0]))
			}
			achievements, err := c.client.Achievements.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), achievements)
		},
	}
}
