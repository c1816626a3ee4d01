package theme

import (
	"fmt"
	"sync"

	"github.com/appetiteclub/apt"
)

// Theme is a named color preset delivered to rendering clients as CSS
// custom properties.
type Theme struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// DefaultThemeID is the preset applied when a session has not chosen one.
const DefaultThemeID = "default"

var presets = map[string]Theme{
	"default": {
		ID:   "default",
		Name: "Default Orange",
		Colors: map[string]string{
			"--color-primary":        "249 115 22",
			"--color-secondary":      "251 191 36",
			"--color-accent":         "239 68 68",
			"--color-background":     "255 245 242",
			"--color-text-primary":   "75 42 42",
			"--color-text-secondary": "120 90 90",
		},
	},
	"ocean": {
		ID:   "ocean",
		Name: "Ocean Blue",
		Colors: map[string]string{
			"--color-primary":        "14 165 233",
			"--color-secondary":      "59 130 246",
			"--color-accent":         "239 68 68",
			"--color-background":     "240 249 255",
			"--color-text-primary":   "12 74 110",
			"--color-text-secondary": "30 64 175",
		},
	},
	"forest": {
		ID:   "forest",
		Name: "Forest Green",
		Colors: map[string]string{
			"--color-primary":        "34 197 94",
			"--color-secondary":      "251 191 36",
			"--color-accent":         "239 68 68",
			"--color-background":     "240 253 244",
			"--color-text-primary":   "20 83 45",
			"--color-text-secondary": "21 128 61",
		},
	},
}

// presetOrder fixes the display order of the preset list.
var presetOrder = []string{"default", "ocean", "forest"}

// Presets returns all named presets in display order.
func Presets() []Theme {
	out := make([]Theme, 0, len(presetOrder))
	for _, id := range presetOrder {
		out = append(out, presets[id])
	}
	return out
}

// Preset returns the named preset.
func Preset(id string) (Theme, error) {
	t, ok := presets[id]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", id)
	}
	return t, nil
}

// Store tracks each session's chosen theme. Sessions without an explicit
// choice get the default preset.
type Store struct {
	mu     sync.RWMutex
	chosen map[string]string
	logger apt.Logger
}

func NewStore(logger apt.Logger) *Store {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Store{
		chosen: make(map[string]string),
		logger: logger,
	}
}

// Get returns the session's current theme.
func (s *Store) Get(sessionID string) Theme {
	s.mu.RLock()
	id, ok := s.chosen[sessionID]
	s.mu.RUnlock()
	if !ok {
		id = DefaultThemeID
	}
	return presets[id]
}

// Set records the session's theme choice. Unknown presets are rejected.
func (s *Store) Set(sessionID, themeID string) (Theme, error) {
	t, err := Preset(themeID)
	if err != nil {
		return Theme{}, err
	}

	s.mu.Lock()
	s.chosen[sessionID] = themeID
	s.mu.Unlock()

	s.logger.Debug("theme changed", "session_id", sessionID, "theme", themeID)
	return t, nil
}
