package crossing

import (
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// CellWidth is how many screen columns one grid cell occupies.
const CellWidth = 3

// Visual characters for rendering
const (
	SafeChar   = '·'
	RoadChar   = '═'
	TargetChar = '◎'
	AgentChar  = '●'
)

// vehicleBodies is indexed by variant; each variant has its own body rune.
var vehicleBodies = []rune{'█', '▓', '▒', '▆', '■', '▉', '▙', '▟', '◼', '▩', '▣', '▤'}

// Sprite returns the CellWidth runes and color for a vehicle. A leftward
// vehicle is the mirror image of a rightward one.
func Sprite(variant int, h Heading) ([CellWidth]rune, core.Color) {
	body := vehicleBodies[wrapIndex(variant, len(vehicleBodies))]
	color := core.VehicleColors[wrapIndex(variant, len(core.VehicleColors))]
	if h == HeadingLeft {
		return [CellWidth]rune{'◀', body, body}, color
	}
	return [CellWidth]rune{body, body, '▶'}, color
}

// wrapIndex maps any int into [0, n).
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// DrawSize returns the screen area Draw needs for a grid of the given size.
func DrawSize(size int) (w, h int) {
	return size*CellWidth + 2, size + 3
}

// Draw paints snap onto dst with the grid's top-left border corner at (ox, oy).
// It only reads the snapshot.
func Draw(dst *core.Screen, snap Snapshot, ox, oy int) {
	w, h := DrawSize(snap.Size)
	dst.DrawBox(core.NewRect(ox, oy, w, h-1))

	gx, gy := ox+1, oy+1
	cell := func(p core.Pos, runes [CellWidth]rune, c core.Color) {
		for i, r := range runes {
			dst.SetColor(gx+p.X*CellWidth+i, gy+p.Y, r, c)
		}
	}

	// Lanes
	for y := 0; y < snap.Size; y++ {
		fill, color := SafeChar, core.ColorGreen
		if y < len(snap.Layout) && snap.Layout[y].IsRoad() {
			fill, color = RoadChar, core.ColorGray
		}
		for x := 0; x < snap.Size; x++ {
			cell(core.P(x, y), [CellWidth]rune{' ', fill, ' '}, color)
		}
	}

	// Targets, then agent, then vehicles on top
	for _, t := range snap.Targets {
		cell(t, [CellWidth]rune{' ', TargetChar, ' '}, core.ColorRed)
	}

	agentColor := core.ColorBrightBlue
	if snap.State == core.EpisodeCollision {
		agentColor = core.ColorBrightRed
	}
	cell(snap.Agent, [CellWidth]rune{' ', AgentChar, ' '}, agentColor)

	for _, v := range snap.Vehicles {
		runes, color := Sprite(v.Variant, v.Heading())
		if v.Pos() == snap.Agent {
			runes[1] = '✖'
		}
		cell(v.Pos(), runes, color)
	}

	// Status line
	info := BuildInfo(snap.Agent, snap.Targets)
	status := fmt.Sprintf("ep %d  step %d  %s  dist %d", snap.Episode, snap.Step, snap.State, info.Distance)
	statusColor := core.ColorDefault
	switch snap.State {
	case core.EpisodeSuccess:
		statusColor = core.ColorBrightGreen
	case core.EpisodeCollision:
		statusColor = core.ColorBrightRed
	}
	dst.DrawTextColor(ox, oy+h-1, status, statusColor)
}
