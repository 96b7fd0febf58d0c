package cmd

import (
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rorical/SheetRelay/internal/app"
	"github.com/Rorical/SheetRelay/internal/config"
	"github.com/Rorical/SheetRelay/internal/logging"
)

var (
	flagURL     string
	flagAnonKey string
	flagOutDir  string
	flagFile    string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetrelay",
	Short: "Send a spreadsheet to a processing function and download the result",
	Long: `sheetrelay lets you pick an Excel workbook (.xlsx or .xls), sends it to a remote
processing function and saves the processed workbook as processed_<name>.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logging.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
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

		startApplication(app.Options{Settings: settings, InitialFile: flagFile}, logger)
	},
}

func startApplication(opts app.Options, logger *logging.Logger) {
	application, err := app.NewApplication(opts, logger)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// resolveSettings loads the profile config and applies env and flag overrides.
func resolveSettings() (config.Settings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Settings{}, err
	}
	return cfg.Resolve(config.Overrides{
		SupabaseURL: flagURL,
		AnonKey:     flagAnonKey,
		OutputDir:   flagOutDir,
	}), nil
}

func Execute() {
	// cobra already printed the error
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "project URL of the processing function (overrides "+config.EnvSupabaseURL+")")
	rootCmd.PersistentFlags().StringVar(&flagAnonKey, "anon-key", "", "public API key (overrides "+config.EnvAnonKey+")")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out", "o", "", "directory processed files are saved to")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "preselect a spreadsheet")

	rootCmd.AddCommand(profileCmd)
}
