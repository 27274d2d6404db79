package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/classification"
	"github.com/streamlens/streamlens/internal/cli"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/source"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [stream name]",
		Short: "Classify stream names against a group's pattern configuration",
		Long: `Classify a single stream name, or a whole playlist with --streams, against
the stored configuration of a group. Output shows the classification tag and
the extracted fields highlighted in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			group, _ := cmd.Flags().GetString("group")
			streamsFile, _ := cmd.Flags().GetString("streams")

			if len(args) == 0 && streamsFile == "" {
				return fmt.Errorf("provide a stream name or --streams file")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			g, err := store.GetGroup(ctx, group)
			if err != nil {
				return err
			}

			var streams []string
			if streamsFile != "" {
				streams, err = source.Load(streamsFile)
				if err != nil {
					return err
				}
			}
			if len(args) == 1 {
				streams = append(streams, args[0])
			}

			classifier := classification.NewClassifier()
			for _, name := range streams {
				res := classifier.Classify(name, &g.Config)
				tag := cli.TagStyle(res.Tag).Render(string(res.Tag))
				if res.Reason != "" {
					tag += cli.SubtleStyle.Render(fmt.Sprintf(" (%s)", res.Reason))
				}
				fmt.Printf("%s  %s\n", tag, cli.RenderHighlights(name, res.Ranges))

				for _, r := range res.Ranges {
					if !model.FieldKind(r.Group).Valid() {
						continue
					}
					fmt.Printf("    %s = %q\n", r.Group, name[r.Start:r.End])
				}
			}

			return nil
		},
	}

	cmd.Flags().String("group", "", "group whose configuration to classify against")
	cmd.Flags().String("streams", "", "playlist or plain-list file of stream names")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}
