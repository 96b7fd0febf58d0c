package models

// AppModel represents the UI state - only local UI concerns.
// Lifecycle state (status, file, error) lives in core.State.
type AppModel struct {
	Alert      string   // Blocking alert text, empty when none is shown
	Browsing   bool     // File picker is open
	Preview    []string // Sheet names of the selected workbook, if readable
	SavedPath  string   // Where the last processed file was written
	Notice     string   // Status bar text
	Width      int      // Terminal width
	Height     int      // Terminal height
	ServiceSet bool     // Whether a remote endpoint is configured
}
