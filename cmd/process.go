package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/download"
	"github.com/Rorical/SheetRelay/internal/logging"
	"github.com/Rorical/SheetRelay/internal/meter"
	"github.com/Rorical/SheetRelay/internal/models"
	"github.com/Rorical/SheetRelay/internal/remote"
	"github.com/Rorical/SheetRelay/internal/selector"
	"github.com/Rorical/SheetRelay/internal/utils"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Process a spreadsheet without the interactive UI",
	Long: `Send one spreadsheet to the processing function, show a progress indicator
on stderr and save the result as processed_<name>. Exits non-zero on failure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		logger := logging.NewDefaultCLILogger()

		settings, err := resolveSettings()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		file, err := selector.Load(args[0])
		if err != nil {
			return err
		}

		client, err := remote.NewClient(settings, logger)
		if err != nil {
			return err
		}
		service := core.NewTransferService(client, download.NewSaver(settings.OutputDir, logger), nil, logger)

		state := core.Reduce(core.NewState(), core.FileChosen{File: file})
		state = core.Reduce(state, core.StartRequested{})
		fmt.Fprintf(os.Stderr, "Processing %s (%s)\n", file.Name, utils.FormatSize(file.Size))

		result, err := runWithMeter(cmd.Context(), service, file)
		if err != nil {
			state = core.Reduce(state, core.TransferFailed{Message: core.MessageOf(err)})
			return fmt.Errorf("%s: %s", state.Status, state.Err)
		}
		state = core.Reduce(state, core.TransferSucceeded{})

		fmt.Printf("%s: saved %s (%s)\n", state.Status, utils.ShortPath(result.SavedPath), utils.FormatSize(int64(result.Size)))
		return nil
	},
}

// runWithMeter runs the transfer while the pseudo-progress meter drives a
// progress bar. The bar is cleared, never completed, when the call returns.
func runWithMeter(ctx context.Context, service *core.TransferService, file models.SelectedFile) (core.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("Processing data..."),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
	)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		m := meter.New()
		ticker := time.NewTicker(meter.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m.Step()
				_ = bar.Set(int(m.Value()))
			}
		}
	}()

	result, err := service.Transfer(ctx, file)
	close(done)
	<-stopped
	_ = bar.Clear()
	return result, err
}

func init() {
	rootCmd.AddCommand(processCmd)
}
