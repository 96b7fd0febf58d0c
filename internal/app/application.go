package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/SheetRelay/internal/config"
	"github.com/Rorical/SheetRelay/internal/core"
	"github.com/Rorical/SheetRelay/internal/dispatcher"
	"github.com/Rorical/SheetRelay/internal/download"
	"github.com/Rorical/SheetRelay/internal/eventbus"
	"github.com/Rorical/SheetRelay/internal/logging"
	"github.com/Rorical/SheetRelay/internal/remote"
	"github.com/Rorical/SheetRelay/internal/selector"
	"github.com/Rorical/SheetRelay/internal/update"
)

// Options are the startup inputs of the interactive application.
type Options struct {
	Settings    config.Settings
	InitialFile string // Optional path selected before the UI appears
	StartDir    string // Directory the picker opens in
}

// Application manages the complete application lifecycle
type Application struct {
	settings   config.Settings
	log        *logging.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.TransferService
	model      *AppModel
}

// AppModel is the root controller handed to Bubble Tea.
type AppModel struct {
	session    *update.Session
	dispatcher *dispatcher.EventDispatcher
	bar        progress.Model
	help       help.Model
	initial    tea.Cmd
}

// NewApplication wires the transfer service, the bus and the UI model.
func NewApplication(opts Options, log *logging.Logger) (*Application, error) {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		log.Warn().Err(err.Err).
			Str("op", err.Operation).
			Bool("circuit_open", eb.GetCircuitBreakerState() == eventbus.CircuitOpen).
			Msg("event bus error")
	})
	disp := dispatcher.NewEventDispatcher(eb)

	// A missing configuration is not fatal: the UI still starts and every
	// attempt fails with a clear message.
	var (
		invoker core.Invoker
		saver   core.Saver
	)
	client, err := remote.NewClient(opts.Settings, log)
	if err != nil {
		log.Warn().Err(err).Msg("remote function unavailable")
	} else {
		invoker = client
		saver = download.NewSaver(opts.Settings.OutputDir, log)
		log.Info().Str("endpoint", client.Endpoint()).Str("profile", opts.Settings.Profile).Msg("remote function configured")
	}
	service := core.NewTransferService(invoker, saver, eb, log)

	model := newAppModel(update.NewSession(opts.StartDir, service.IsReady()), disp)
	if opts.InitialFile != "" {
		file, err := selector.Load(opts.InitialFile)
		if err != nil {
			return nil, fmt.Errorf("cannot preselect %s: %w", opts.InitialFile, err)
		}
		model.initial = update.SelectFile(model.session, file)
	}

	return &Application{
		settings:   opts.Settings,
		log:        log,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func newAppModel(session *update.Session, disp *dispatcher.EventDispatcher) *AppModel {
	return &AppModel{
		session:    session,
		dispatcher: disp,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(48), progress.WithoutPercentage()),
		help:       help.New(),
	}
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}
