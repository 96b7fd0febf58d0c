// Package meter drives the cosmetic progress value shown while a remote call
// is outstanding. It carries no information about real progress.
package meter

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	TickInterval = 400 * time.Millisecond
	// Ceiling is never reached; 100% is implied by the meter disappearing.
	Ceiling = 95.0
	MaxStep = 5.0
)

// TickMsg advances the meter that started it. Ticks of an older generation
// are stale and ignored.
type TickMsg struct {
	Generation int
	Time       time.Time
}

// Meter is a pseudo-progress value in [0, Ceiling).
type Meter struct {
	value      float64
	running    bool
	generation int
	rand       func() float64
}

// New returns a stopped meter using the global random source.
func New() Meter {
	return Meter{rand: rand.Float64}
}

// NewWithRand returns a meter drawing steps from r, which must return values
// in [0, 1).
func NewWithRand(r func() float64) Meter {
	return Meter{rand: r}
}

// Start resets to 0 and schedules the first tick.
func (m *Meter) Start() tea.Cmd {
	m.generation++
	m.value = 0
	m.running = true
	return tickCmd(m.generation)
}

// Stop resets to 0. Pending ticks become stale.
func (m *Meter) Stop() {
	m.generation++
	m.value = 0
	m.running = false
}

// Update advances the meter on its own ticks and re-arms the timer.
func (m *Meter) Update(msg TickMsg) tea.Cmd {
	if !m.running || msg.Generation != m.generation {
		return nil
	}
	m.Step()
	return tickCmd(m.generation)
}

// Step adds one random increment, skipping any that would reach Ceiling.
func (m *Meter) Step() {
	if next := m.value + m.rand()*MaxStep; next < Ceiling {
		m.value = next
	}
}

func (m Meter) Value() float64 {
	return m.value
}

// Percent is the value as a fraction for progress bars.
func (m Meter) Percent() float64 {
	return m.value / 100
}

func (m Meter) Running() bool {
	return m.running
}

func tickCmd(generation int) tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Generation: generation, Time: t}
	})
}
