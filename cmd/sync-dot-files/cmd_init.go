package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [github-account]",
	Short: "Create or update settings for a GitHub account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var account string
		if len(args) == 1 {
			account = args[0]
		} else {
			var err error
			if account, err = promptAccount(); err != nil {
				return err
			}
		}

		fmt.Printf("Initializing the repository for %s\n", account)
		app := newApp()
		result, err := app.Init(account)
		if err != nil {
			return err
		}

		fmt.Printf("  Settings:   %s\n", app.SettingsFile())
		fmt.Printf("  Repository: %s\n", result.Settings.RepoPath)
		fmt.Printf("  Remote:     %s\n", result.RemoteURL)
		return nil
	},
}

// promptAccount asks for the account when stdin is a terminal.
func promptAccount() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errors.New("no GitHub account was provided")
	}

	var account string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub account").
				Description("Dotfiles are cloned from <account>/my-dot-files").
				Value(&account).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("account is required")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(account), nil
}
