package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/SheetRelay/internal/app"
	"github.com/Rorical/SheetRelay/internal/config"
	"github.com/Rorical/SheetRelay/internal/logging"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the app",
	Long:  `Switch to the specified profile and immediately start the interactive app.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		settings, err := resolveSettings()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		logPath, err := config.LogPath()
		if err != nil {
			log.Fatalf("Failed to resolve log path: %v", err)
		}
		logger, err := logging.NewFileLogger(logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer logger.Close()

		startApplication(app.Options{Settings: settings}, logger)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
