package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scatscout/internal/board"
)

// ThemeDef describes how cells are drawn, loaded from JSON.
type ThemeDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "classic")
	Name        string   `json:"name"`        // Display name
	Hidden      string   `json:"hidden"`      // Glyph for unrevealed cells
	Hazard      string   `json:"hazard"`      // Glyph for revealed hazards
	HiddenColor string   `json:"hiddenColor"` // Hex color for unrevealed cells
	HazardColor string   `json:"hazardColor"` // Hex color for revealed hazards
	CountColors []string `json:"countColors"` // Hex colors indexed by neighbor count 0-8
}

// Glyph returns the character used to draw a cell.
func (t *ThemeDef) Glyph(cell board.Cell) rune {
	switch cell.Kind {
	case board.CellHidden:
		return firstRune(t.Hidden, board.HiddenRune)
	case board.CellHazard:
		return firstRune(t.Hazard, board.HazardRune)
	default:
		return cell.Rune()
	}
}

// Color returns the foreground color used to draw a cell.
func (t *ThemeDef) Color(cell board.Cell) tcell.Color {
	var hex string
	switch cell.Kind {
	case board.CellHidden:
		hex = t.HiddenColor
	case board.CellHazard:
		hex = t.HazardColor
	default:
		if cell.Count >= 0 && cell.Count < len(t.CountColors) {
			hex = t.CountColors[cell.Count]
		}
	}

	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
