package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/service"
	"github.com/streamlens/streamlens/internal/source"
	"github.com/streamlens/streamlens/internal/tui"
)

func designCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Interactively design a group's patterns with live corpus preview",
		Long: `Open the interactive designer: edit the six pattern slots and watch the
whole corpus re-classify on every keystroke. Ctrl+S pushes the configuration
to the group atomically; Esc discards all edits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			group, _ := cmd.Flags().GetString("group")
			streamsFile, _ := cmd.Flags().GetString("streams")

			streams, err := source.Load(streamsFile)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read stream list %s", streamsFile), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			session, err := service.NewSession(ctx, store, group, streams)
			if err != nil {
				return err
			}

			return tui.Run(ctx, session)
		},
	}

	cmd.Flags().String("group", "", "group to design patterns for")
	cmd.Flags().String("streams", "", "playlist or plain-list file of stream names")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("streams")

	return cmd
}
