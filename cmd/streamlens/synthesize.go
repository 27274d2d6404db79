package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/pattern"
	"github.com/streamlens/streamlens/internal/service"
)

func synthesizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "Derive a single-field capture pattern from an example selection",
		Long: `Derive a named-capture regex from a labeled example: the text you would
select in a stream name and the full stream name it came from.

With --group, the derived pattern is also merged into that group's matching
extraction slot and saved.

Example:
  streamlens synthesize --field date --text 2024-05-01 --source "Game 2024-05-01 Live"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			fieldName, _ := cmd.Flags().GetString("field")
			text, _ := cmd.Flags().GetString("text")
			source, _ := cmd.Flags().GetString("source")
			group, _ := cmd.Flags().GetString("group")

			field, err := model.ParseFieldKind(fieldName)
			if err != nil {
				return err
			}
			sel := model.TextSelection{Text: text, Field: field}

			derived := pattern.Synthesize(sel, source)
			if derived == "" {
				return fmt.Errorf("selection %q must be a non-empty substring of the source: %w", text, common.ErrNoPattern)
			}
			fmt.Println(derived)

			if group == "" {
				return nil
			}
			return mergeSelection(ctx, group, func(session *service.Session) error {
				if err := session.ApplySelection(sel, source); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "saved to group %q slot %s\n", group, model.SlotFor(field))
				return nil
			})
		},
	}

	cmd.Flags().String("field", "", "field kind: team1, team2, date, time, or league")
	cmd.Flags().String("text", "", "the selected example text")
	cmd.Flags().String("source", "", "the full stream name the selection came from")
	cmd.Flags().String("group", "", "merge the derived pattern into this group's configuration")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// mergeSelection runs one session edit against a group and saves it.
func mergeSelection(ctx context.Context, group string, edit func(*service.Session) error) error {
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	session, err := service.NewSession(ctx, store, group, nil)
	if err != nil {
		return err
	}
	if err := edit(session); err != nil {
		return err
	}
	return session.Apply(ctx)
}

func synthesizeTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synthesize-teams",
		Short: "Derive a combined two-team capture pattern from both team selections",
		Long: `Derive a single pattern capturing both teams and the separator between them.
The team1 selection must occur before the team2 selection in the source.
With --group, the derived pattern is also merged into that group's teams
slot and saved.

Example:
  streamlens synthesize-teams --team1 Lakers --team2 Celtics --source "Lakers vs Celtics 7:30 PM"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			team1, _ := cmd.Flags().GetString("team1")
			team2, _ := cmd.Flags().GetString("team2")
			source, _ := cmd.Flags().GetString("source")
			group, _ := cmd.Flags().GetString("group")

			derived := pattern.SynthesizePair(team1, team2, source)
			if derived == "" {
				return fmt.Errorf("both teams must appear in the source with team1 first: %w", common.ErrNoPattern)
			}
			fmt.Println(derived)

			if group == "" {
				return nil
			}
			return mergeSelection(ctx, group, func(session *service.Session) error {
				if err := session.ApplyTeamPair(team1, team2, source); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "saved to group %q slot %s\n", group, model.SlotTeams)
				return nil
			})
		},
	}

	cmd.Flags().String("team1", "", "the selected first team text")
	cmd.Flags().String("team2", "", "the selected second team text")
	cmd.Flags().String("source", "", "the full stream name the selections came from")
	cmd.Flags().String("group", "", "merge the derived pattern into this group's teams slot")
	_ = cmd.MarkFlagRequired("team1")
	_ = cmd.MarkFlagRequired("team2")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
