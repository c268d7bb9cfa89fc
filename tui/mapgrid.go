package tui

import (
	"strings"

	"staysearch/state"
)

// Marker glyphs on the character map
const (
	glyphEmpty    = '·'
	glyphMarker   = 'o'
	glyphHovered  = 'O'
	glyphSelected = '@'
)

// mapCells places markers on a width x height character grid.
// Offsets are percentages of the map box, as for the HTML map; markers projected
// outside the box are dropped. Later markers overwrite earlier ones on a shared cell.
func mapCells(markers []state.Marker, width, height int, ms state.MapState, selectedID string) []string {
	if width < 1 || height < 1 {
		return nil
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(glyphEmpty), width))
	}

	for _, mk := range markers {
		col := int(mk.Offset.Left / 100 * float64(width))
		row := int(mk.Offset.Top / 100 * float64(height))
		if mk.Offset.Left < 0 || mk.Offset.Top < 0 || col >= width || row >= height {
			continue
		}
		id := mk.Listing.ID
		glyph := glyphMarker
		switch {
		case id == selectedID:
			glyph = glyphSelected
		case ms.Emphasized(id, selectedID):
			glyph = glyphHovered
		}
		grid[row][col] = glyph
	}

	lines := make([]string, height)
	for r, cells := range grid {
		lines[r] = string(cells)
	}
	return lines
}
