package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/classification"
	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/source"
)

func summarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Classify a whole corpus and print summary counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			group, _ := cmd.Flags().GetString("group")
			streamsFile, _ := cmd.Flags().GetString("streams")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			g, err := store.GetGroup(ctx, group)
			if err != nil {
				return err
			}

			streams, err := source.Load(streamsFile)
			if err != nil {
				return err
			}
			common.LogInfo("corpus loaded", common.Fields{"file": streamsFile, "streams": len(streams)})

			bar := progressbar.NewOptions(len(streams),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Classifying streams..."),
			)

			classifier := classification.NewClassifier()
			summary := classifier.SummarizeFunc(streams, &g.Config, func(int) {
				_ = bar.Add(1)
			})
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "total\t%d\n", summary.Total)
			_, _ = fmt.Fprintf(w, "included\t%d\n", summary.Included)
			_, _ = fmt.Fprintf(w, "included with fields\t%d\n", summary.WithExtractions)
			_, _ = fmt.Fprintf(w, "excluded\t%d\n", summary.Excluded)
			_, _ = fmt.Fprintf(w, "builtin filtered\t%d\n", summary.BuiltinFiltered)
			return w.Flush()
		},
	}

	cmd.Flags().String("group", "", "group whose configuration to classify against")
	cmd.Flags().String("streams", "", "playlist or plain-list file of stream names")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("streams")

	return cmd
}
