package crossing

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Variant IDs
const (
	IDFixed     = "crossing"
	IDGenerated = "crossing_lanes"
)

// Env wraps a World with the identity and drawing the platform needs.
type Env struct {
	*World
	id    string
	title string
}

// NewEnv creates a World in the given layout mode and wraps it.
func NewEnv(cfg config.CrossingConfig, mode LayoutMode, logger *log.Logger) (*Env, error) {
	w, err := New(cfg, WithLayout(mode), WithLogger(logger))
	if err != nil {
		return nil, err
	}
	id, title := IDFixed, "Pedestrian Crossing"
	if mode == LayoutGenerated {
		id, title = IDGenerated, "Pedestrian Crossing (Lanes)"
	}
	return &Env{World: w, id: id, title: title}, nil
}

// ID returns the variant identifier.
func (e *Env) ID() string {
	return e.id
}

// Title returns the display name.
func (e *Env) Title() string {
	return e.title
}

// Render draws the world centered on dst.
func (e *Env) Render(dst *core.Screen) {
	dst.Clear()
	w, h := DrawSize(e.Size())
	ox := core.Max(0, (dst.Width()-w)/2)
	oy := core.Max(0, (dst.Height()-h)/2)
	dst.DrawText(ox, oy-1, e.title)
	Draw(dst, e.Snapshot(), ox, oy)
}

var _ registry.Env = (*Env)(nil)

// factory adapts NewEnv to registry.Factory for one layout mode.
func factory(mode LayoutMode) registry.Factory {
	return func(cfg config.CrossingConfig, logger *log.Logger) (registry.Env, error) {
		env, err := NewEnv(cfg, mode, logger)
		if err != nil {
			return nil, err
		}
		return env, nil
	}
}

// Register the variants with the registry
func init() {
	registry.Register(IDFixed, "Pedestrian Crossing", factory(LayoutFixed))
	registry.Register(IDGenerated, "Pedestrian Crossing (Lanes)", factory(LayoutGenerated))
}
