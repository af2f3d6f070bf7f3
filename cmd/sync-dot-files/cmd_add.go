package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Move a dotfile into the repository and link it back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Adding the dotfile %s\n", args[0])

		rel, err := newApp().Add(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓ Tracking " + rel))
		fmt.Println(dimStyle.Render("  Run 'sync-dot-files sync' to commit and push it."))
		return nil
	},
}
