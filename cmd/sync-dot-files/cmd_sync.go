package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull, commit and push the repository, then relink missing dotfiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Syncing the repository")

		result, err := newApp().Sync(cmd.Context())
		if err != nil {
			return err
		}

		if result.Committed {
			fmt.Println(okStyle.Render("✓ Committed and pushed local changes"))
		}
		for _, f := range result.Relinked {
			fmt.Printf("  -> linked %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Println(warnStyle.Render("  ⚠️  " + w.String()))
		}
		fmt.Println(okStyle.Render("✓ Repository is synced"))
		return nil
	},
}
