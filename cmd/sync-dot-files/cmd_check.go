package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/sync-dot-files/internal/link"
)

var isCleanCmd = &cobra.Command{
	Use:   "is-clean",
	Short: "Exit 0 if the repository has no uncommitted changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking if the repository is clean")
		clean, err := newApp().IsClean(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(verdict(clean, "The repository is clean", "The repository is not clean"))
		if !clean {
			return exitStatus(1)
		}
		return nil
	},
}

var isSyncedCmd = &cobra.Command{
	Use:   "is-synced",
	Short: "Exit 0 if the repository matches its remote and every dotfile is linked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking if the repository is synced")
		synced, err := newApp().IsSynced(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(verdict(synced, "The repository is synced", "The repository is not synced"))
		if !synced {
			return exitStatus(1)
		}
		return nil
	},
}

// runCheck prints the combined report and fails unless clean and synced.
func runCheck(cmd *cobra.Command) error {
	st, err := newApp().Status(cmd.Context())
	if err != nil {
		return err
	}

	if !st.Ready {
		fmt.Println(warnStyle.Render("! The repository is not ready, run 'sync-dot-files sync'"))
	}
	fmt.Println(verdict(st.Clean, "Clean", "Not clean"))
	fmt.Println(verdict(st.Synced, "Synced", "Not synced"))

	for _, f := range st.Files {
		if f.State == link.CorrectLink {
			fmt.Println(dimStyle.Render("  ✓ " + f.File))
		} else {
			fmt.Println(warnStyle.Render(fmt.Sprintf("  ⚠️  %s (%s)", f.File, f.State)))
		}
	}

	if !st.Clean || !st.Synced {
		return exitStatus(1)
	}
	return nil
}
