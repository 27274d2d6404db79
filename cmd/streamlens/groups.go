package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/model"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage stored group pattern configurations",
	}

	cmd.AddCommand(groupsListCmd())
	cmd.AddCommand(groupsShowCmd())
	cmd.AddCommand(groupsSetCmd())
	cmd.AddCommand(groupsToggleCmd("enable", true))
	cmd.AddCommand(groupsToggleCmd("disable", false))
	cmd.AddCommand(groupsDeleteCmd())

	return cmd
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			groups, err := store.ListGroups(ctx)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Println("No groups configured")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tENABLED SLOTS\tSKIP BUILTIN\tUPDATED")
			for _, g := range groups {
				enabled := 0
				for _, name := range model.AllSlotNames() {
					if g.Config.Slot(name).Active() {
						enabled++
					}
				}
				_, _ = fmt.Fprintf(w, "%s\t%d/6\t%v\t%s\n",
					g.Name, enabled, g.Config.SkipBuiltinFilter,
					g.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func groupsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <group>",
		Short: "Show a group's pattern configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			g, err := store.GetGroup(ctx, args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "SLOT\tENABLED\tPATTERN")
			for _, name := range model.AllSlotNames() {
				slot := g.Config.Slot(name)
				patternText := slot.Pattern
				if patternText == "" {
					patternText = "(none)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%v\t%s\n", name, slot.Enabled, patternText)
			}
			_, _ = fmt.Fprintf(w, "skip builtin filter\t%v\t\n", g.Config.SkipBuiltinFilter)
			return w.Flush()
		},
	}
}

func groupsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <group> <slot> <pattern>",
		Short: "Set one pattern slot on a group",
		Long: `Set the pattern text of one slot (include, exclude, teams, date, time,
league). Setting a non-empty pattern enables the slot. The whole
configuration is written back atomically.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupName, slotName, patternText := args[0], args[1], args[2]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cfg, err := loadOrEmptyConfig(ctx, store, groupName)
			if err != nil {
				return err
			}

			slot := cfg.Slot(model.SlotName(slotName))
			if slot == nil {
				return fmt.Errorf("unknown pattern slot %q: %w", slotName, common.ErrInvalidConfig)
			}
			slot.Pattern = patternText
			slot.Enabled = patternText != ""

			return store.SaveGroupConfig(ctx, groupName, cfg)
		},
	}

	return cmd
}

func groupsToggleCmd(verb string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <group> <slot>", verb),
		Short: fmt.Sprintf("%s one pattern slot, or skip-builtin, on a group", verb),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupName, slotName := args[0], args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cfg, err := loadOrEmptyConfig(ctx, store, groupName)
			if err != nil {
				return err
			}

			if slotName == "skip-builtin" {
				cfg.SkipBuiltinFilter = enabled
			} else {
				slot := cfg.Slot(model.SlotName(slotName))
				if slot == nil {
					return fmt.Errorf("unknown pattern slot %q: %w", slotName, common.ErrInvalidConfig)
				}
				slot.Enabled = enabled
			}

			return store.SaveGroupConfig(ctx, groupName, cfg)
		},
	}
}

func groupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group>",
		Short: "Delete a stored group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return store.DeleteGroup(ctx, args[0])
		},
	}
}
