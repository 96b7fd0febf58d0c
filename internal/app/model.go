package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/SheetRelay/internal/update"
	"github.com/Rorical/SheetRelay/ui/components"
	"github.com/Rorical/SheetRelay/ui/styles"
)

const defaultWidth = 72

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.initial,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(m.session, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(m.session, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	s := m.session
	width := s.UI.Width
	if width <= 0 {
		width = defaultWidth
	}
	inner := min(width-4, defaultWidth)

	if s.UI.Alert != "" {
		return lipgloss.Place(width, max(s.UI.Height, 12), lipgloss.Center, lipgloss.Center,
			components.RenderAlert(s.UI.Alert, inner))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("Spreadsheet Converter"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle().Render("Automated data processing and scraping"))
	b.WriteString("\n\n")
	if !s.UI.ServiceSet {
		b.WriteString(styles.HintStyle().Render("Remote function not configured. Run: sheetrelay profile edit"))
		b.WriteString("\n\n")
	}

	if s.Picker.IsOpen() {
		b.WriteString(s.Picker.View())
		b.WriteString("\n")
		b.WriteString(styles.HintStyle().Render("enter: select  •  q: close picker"))
		b.WriteString("\n")
	} else {
		b.WriteString(components.RenderDropZone(s.State.File, s.UI.Preview, s.State.IsProcessing(), inner))
		b.WriteString("\n\n")
		b.WriteString(components.RenderControls(s.State))
		b.WriteString("\n\n")
		if feedback := components.RenderFeedback(s.State, s.Meter, m.bar, s.UI.SavedPath, inner); feedback != "" {
			b.WriteString(feedback)
			b.WriteString("\n\n")
		}
		b.WriteString(m.help.View(s.Keys))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatus(s.State.Status.String(), s.UI.Notice, width))
	return b.String()
}
