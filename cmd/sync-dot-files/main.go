package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ruminaider/sync-dot-files/internal/commands"
	"github.com/ruminaider/sync-dot-files/internal/logging"
	"github.com/ruminaider/sync-dot-files/internal/paths"
)

var version = "0.1.0"

var (
	configFile string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "sync-dot-files",
	Short: "Keep dotfiles linked to a git repository",
	Long: "sync-dot-files moves dotfiles into a git repository, links them back into your home " +
		"directory, and keeps the repository in sync with its GitHub remote.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity, os.Stderr, paths.LogFile())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: report clean and synced together.
		return runCheck(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sync-dot-files %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		fmt.Sprintf("settings file (default %s, env %s)", paths.SettingsFile(), paths.SettingsEnv))
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(isCleanCmd)
	rootCmd.AddCommand(isSyncedCmd)
	rootCmd.AddCommand(repoPathCmd)
	rootCmd.AddCommand(syncCmd)
}

// newApp builds the application from the global flags.
func newApp() *commands.App {
	return commands.New(commands.Options{SettingsFile: configFile})
}

// exitStatus ends the process with a non-zero code without printing an error.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		var code exitStatus
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
