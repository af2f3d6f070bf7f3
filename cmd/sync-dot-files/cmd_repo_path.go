package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repoPathCmd = &cobra.Command{
	Use:   "repo-path",
	Short: "Print the local repository path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newApp().RepoPath()
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}
