package entities

// LogCategory tags combat log lines
type LogCategory string

// Log categories
const (
	LogInfo      LogCategory = "info"
	LogCombat    LogCategory = "combat"
	LogNarrative LogCategory = "narrative"
	LogRoll      LogCategory = "roll"
	LogLevelUp   LogCategory = "levelup"
)

// LogEntry is one human readable line
type LogEntry struct {
	Message  string      `json:"message"`
	Category LogCategory `json:"category"`
	Tick     int64       `json:"tick"`
}

// PopupKind selects popup styling
type PopupKind string

// Popup kinds
const (
	PopupDamage PopupKind = "DAMAGE"
	PopupHeal   PopupKind = "HEAL"
	PopupMiss   PopupKind = "MISS"
)

// DamagePopup is a transient floating number over a tile
type DamagePopup struct {
	Position GridPos   `json:"position"`
	Amount   int       `json:"amount"`
	Text     string    `json:"text"`
	Crit     bool      `json:"crit"`
	Kind     PopupKind `json:"kind"`
}

// Events is what a transition emits for presentation
type Events struct {
	Log    []LogEntry    `json:"log,omitempty"`
	Popups []DamagePopup `json:"popups,omitempty"`
}

// Append concatenates o onto e
func (e *Events) Append(o Events) {
	e.Log = append(e.Log, o.Log...)
	e.Popups = append(e.Popups, o.Popups...)
}

// AddLog records a log line
func (e *Events) AddLog(tick int64, cat LogCategory, msg string) {
	e.Log = append(e.Log, LogEntry{Message: msg, Category: cat, Tick: tick})
}

// AddPopup records a popup
func (e *Events) AddPopup(p DamagePopup) {
	e.Popups = append(e.Popups, p)
}
