// Package game implements the voxelpad sandbox: one stateful controller
// owning the world, the camera, and the inventory selection, stepped by
// platform input frames and rendered into a screen buffer.
package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/voxelpad/internal/camera"
	"github.com/vovakirdan/voxelpad/internal/config"
	"github.com/vovakirdan/voxelpad/internal/core"
	"github.com/vovakirdan/voxelpad/internal/projector"
	"github.com/vovakirdan/voxelpad/internal/registry"
	"github.com/vovakirdan/voxelpad/internal/world"
)

// Tile footprint of one rendered block, in screen cells.
// Terminal cells are roughly twice as tall as wide, so a tile is 2:1.
const (
	tileW = 4
	tileH = 2

	// cellAspect stretches projected x so the grid looks square on screen.
	cellAspect = 2.0
)

// tile is one rendered block with its screen rectangle.
// The slice of tiles from the last render is the hit-test surface for clicks.
type tile struct {
	rect  core.Rect
	block world.Block
}

// Sandbox is the interactive voxel sandbox.
type Sandbox struct {
	conf     config.Config
	presetID string

	cfg  core.RuntimeConfig
	seed int64

	world *world.World
	cam   *camera.Camera

	inventory     []InventoryItem
	selected      world.Material
	inventoryOpen bool
	statsOverlay  bool

	placed  int
	removed int
	quit    bool

	// Last-render layout, consumed by pointer hit tests
	tiles     []tile
	itemRects []core.Rect
	panelRect core.Rect
	hasPanel  bool
}

// New creates a sandbox for the given configuration.
// presetID overrides the configured world preset when non-empty.
func New(conf config.Config, presetID string) *Sandbox {
	conf.Sanitize()
	if presetID == "" {
		presetID = conf.World.Preset
	}
	return &Sandbox{
		conf:     conf,
		presetID: presetID,
	}
}

// PresetID returns the world preset this sandbox generates from.
func (s *Sandbox) PresetID() string {
	return s.presetID
}

// Selected returns the currently selected material.
func (s *Sandbox) Selected() world.Material {
	return s.selected
}

// World returns the live world, mainly for tests.
func (s *Sandbox) World() *world.World {
	return s.world
}

// Reset initializes or reinitializes the sandbox state.
// Called once at start; the world, counters, and selection all reset.
func (s *Sandbox) Reset(cfg core.RuntimeConfig) {
	s.cfg = cfg
	s.seed = cfg.Seed
	s.regenerate()

	s.cam = camera.New(
		camera.Rotation{Pitch: s.conf.Camera.Pitch, Yaw: s.conf.Camera.Yaw},
		s.conf.Camera.Sensitivity,
	)

	s.inventory = defaultInventory()
	s.selected = s.inventory[0].Material
	s.inventoryOpen = false
	s.statsOverlay = false
	s.placed = 0
	s.removed = 0
	s.quit = false
	s.tiles = nil
	s.itemRects = nil
	s.hasPanel = false
}

// regenerate rebuilds the world from the current seed.
func (s *Sandbox) regenerate() {
	p := registry.GenParams{
		Size:       s.conf.World.Size,
		DirtChance: s.conf.World.DirtChance,
		Trees:      s.conf.World.Trees,
	}
	w, err := registry.Generate(s.presetID, p, s.seed)
	if err != nil {
		// Unknown preset: fall back to an empty grid rather than failing;
		// the CLI validates preset IDs before the sandbox starts.
		w = world.New(p.Size)
	}
	s.world = w
}

// Step advances the sandbox by one tick, consuming the frame's actions,
// slot selection, and pointer events in order. Every mutation is followed by
// a full re-projection on the next render; nothing is cached.
func (s *Sandbox) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		s.quit = true
		return core.StepResult{State: s.state()}
	}

	if in.Has(core.ActionInventory) {
		s.inventoryOpen = !s.inventoryOpen
	}
	if in.Has(core.ActionToggleHUD) {
		s.statsOverlay = !s.statsOverlay
	}
	if in.Has(core.ActionRegenerate) {
		s.seed++
		s.regenerate()
		s.placed = 0
		s.removed = 0
	}
	if in.Has(core.ActionDestroy) {
		if _, ok := s.world.RemoveNearCenter(); ok {
			s.removed++
		}
	}
	if in.Has(core.ActionBuild) {
		s.world.BuildAtCenter(s.selected)
		s.placed++
	}

	if in.Slot >= 1 && in.Slot <= len(s.inventory) {
		s.selectSlot(in.Slot - 1)
	}

	for _, ev := range in.Pointer {
		s.handlePointer(ev)
	}

	return core.StepResult{State: s.state()}
}

// selectSlot picks an inventory slot and hides the panel.
func (s *Sandbox) selectSlot(idx int) {
	s.selected = s.inventory[idx].Material
	s.inventoryOpen = false
}

// handlePointer routes one pointer event through the gesture state machine.
// A press that releases without movement is a click; anything else is a drag.
func (s *Sandbox) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerPress:
		if s.inventoryOpen {
			if idx, ok := s.itemAt(ev.X, ev.Y); ok {
				s.selectSlot(idx)
				return
			}
			if s.hasPanel && s.panelRect.Contains(ev.X, ev.Y) {
				return // dead click inside the panel chrome
			}
		}
		s.cam.BeginDrag(ev.X, ev.Y)

	case core.PointerMove:
		s.cam.DragTo(ev.X, ev.Y)

	case core.PointerRelease:
		pressed := s.cam.Dragging()
		moved := s.cam.EndDrag()
		if pressed && !moved {
			s.clickRemove(ev.X, ev.Y)
		}

	case core.PointerRightPress:
		if b, ok := s.tileAt(ev.X, ev.Y); ok {
			s.world.PlaceOnTop(s.selected, b.X, b.Z)
			s.placed++
		}

	case core.PointerLeave:
		s.cam.EndDrag()
	}
}

// clickRemove removes the block under a left click, if any.
func (s *Sandbox) clickRemove(x, y int) {
	if b, ok := s.tileAt(x, y); ok {
		s.world.RemoveAt(b.X, b.Y, b.Z)
		s.removed++
	}
}

// tileAt hit-tests the last rendered frame in reverse paint order so the
// nearest (last drawn) tile wins.
func (s *Sandbox) tileAt(x, y int) (world.Block, bool) {
	for i := len(s.tiles) - 1; i >= 0; i-- {
		if s.tiles[i].rect.Contains(x, y) {
			return s.tiles[i].block, true
		}
	}
	return world.Block{}, false
}

// itemAt hit-tests the inventory item rows from the last render.
func (s *Sandbox) itemAt(x, y int) (int, bool) {
	for i, r := range s.itemRects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// state builds the platform-facing game state.
func (s *Sandbox) state() core.GameState {
	return core.GameState{
		Blocks:  s.world.Len(),
		Placed:  s.placed,
		Removed: s.removed,
		Quit:    s.quit,
	}
}

// State returns the current sandbox state.
func (s *Sandbox) State() core.GameState {
	return s.state()
}

// Render draws the world, HUD, and inventory into the screen buffer and
// refreshes the hit-test layout. The whole block set is re-projected and
// re-sorted on every call.
func (s *Sandbox) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	params := projector.ParamsFor(
		s.world.Size(),
		s.conf.View.TileSize,
		float64(w)/(2*cellAspect),
		float64(h)/2,
	)

	ordered := projector.PaintOrder(s.world.Blocks(), s.cam.Rotation(), params)

	s.tiles = s.tiles[:0]
	for _, pr := range ordered {
		cx := int(math.Round(pr.Point.X * cellAspect))
		cy := int(math.Round(pr.Point.Y))
		r := core.NewRect(cx-tileW/2, cy-tileH/2, tileW, tileH)
		dst.DrawRect(r, '█', pr.Block.Material.Color())
		s.tiles = append(s.tiles, tile{rect: r, block: pr.Block})
	}

	// Crosshair over the view center
	dst.SetColored(w/2, h/2, '+', core.ColorBrightWhite)

	s.drawHUD(dst)
	s.drawInventory(dst)
}

// drawHUD draws the header line and, in the stats overlay mode, the two
// session counters.
func (s *Sandbox) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "voxelpad", core.ColorBrightWhite)
	dst.DrawTextColored(11, 0, "hand: "+s.selected.String(), s.selected.Color())

	if s.statsOverlay {
		placed := fmt.Sprintf("placed %d", s.placed)
		removed := fmt.Sprintf("removed %d", s.removed)
		dst.DrawTextColored(dst.Width()-len(placed)-1, 0, placed, core.ColorBrightGreen)
		dst.DrawTextColored(dst.Width()-len(removed)-1, 1, removed, core.ColorBrightYellow)
	}
}

// drawInventory draws the inventory panel when open and records the item row
// rectangles for click selection.
func (s *Sandbox) drawInventory(dst *core.Screen) {
	s.itemRects = s.itemRects[:0]
	s.hasPanel = false
	if !s.inventoryOpen {
		return
	}

	const rowW = 18
	panelH := len(s.inventory) + 2
	panelX := (dst.Width() - rowW - 2) / 2
	panelY := core.Max(1, (dst.Height()-panelH)/2)

	s.panelRect = core.NewRect(panelX, panelY, rowW+2, panelH)
	s.hasPanel = true

	dst.DrawRect(s.panelRect, ' ', core.ColorDefault)
	dst.DrawBox(s.panelRect)
	dst.DrawText(panelX+2, panelY, " inventory ")

	for i, item := range s.inventory {
		y := panelY + 1 + i
		row := core.NewRect(panelX+1, y, rowW, 1)
		s.itemRects = append(s.itemRects, row)

		marker := " "
		if item.Material == s.selected {
			marker = ">"
		}
		line := fmt.Sprintf("%s%d %c %-7s x%d",
			marker, i+1, item.Material.Icon(), item.Material.String(), item.Count)
		dst.DrawTextColored(row.X, y, line, item.Material.Color())
	}
}
