package gamedata

import (
	"errors"
	"fmt"
)

// DefaultThemeID names the theme that reproduces the classic glyphs.
const DefaultThemeID = "classic"

// ThemeRegistry holds loaded theme definitions.
type ThemeRegistry struct {
	themes map[string]*ThemeDef
	all    []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes: make(map[string]*ThemeDef),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *ThemeDef {
	return r.themes[id]
}

// Lookup is GetByID with an error naming the known themes.
func (r *ThemeRegistry) Lookup(id string) (*ThemeDef, error) {
	if theme := r.themes[id]; theme != nil {
		return theme, nil
	}
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].ID
	}
	return nil, fmt.Errorf("unknown theme %q (have %v)", id, ids)
}

// Default returns the classic theme, or the first theme if it is missing.
func (r *ThemeRegistry) Default() *ThemeDef {
	if theme := r.themes[DefaultThemeID]; theme != nil {
		return theme
	}
	if len(r.all) == 0 {
		return nil
	}
	return &r.all[0]
}

// All returns all theme definitions.
func (r *ThemeRegistry) All() []ThemeDef {
	return r.all
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.all)
}
