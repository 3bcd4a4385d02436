// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/render"
	"go-creep-defense/internal/ui"
	"go-creep-defense/pkg/tilemap"
)

// PlayState - идущая партия: ввод игрока превращается в команды Game.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	m        *tilemap.Map
	renderer *render.TileRenderer
	hud      *ui.HUD
	selected defs.TowerType
	snapshot app.Snapshot
}

func NewPlayState(sm *StateMachine, game *app.Game, m *tilemap.Map) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		m:        m,
		renderer: render.NewTileRenderer(m, render.DefaultMapColors(), config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(),
		selected: defs.TowerNormal,
	}
}

func (s *PlayState) Enter() {
	s.snapshot = s.game.Snapshot()
}

func (s *PlayState) Update(now, deltaTime float64) {
	s.handleInput()
	s.game.Update(now, deltaTime)
	s.snapshot = s.game.Snapshot()
}

func (s *PlayState) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.selected = defs.TowerNormal
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.selected = defs.TowerLaser
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.selected = defs.TowerAir
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.hud.ShowDebug = !s.hud.ShowDebug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.hud.PauseButton.IsClicked(x, y) {
			s.togglePause()
			return
		}
		if tx, ty, ok := s.m.TileAt(float64(x), float64(y)); ok {
			s.game.PlaceTower(tx, ty, s.selected)
		}
	}
}

func (s *PlayState) togglePause() {
	if s.game.State.Running {
		s.game.Pause()
	} else {
		s.game.Resume()
	}
}

func (s *PlayState) hoveredTower() *component.Tower {
	x, y := ebiten.CursorPosition()
	tx, ty, ok := s.m.TileAt(float64(x), float64(y))
	if !ok {
		return nil
	}
	for i := range s.snapshot.Towers {
		t := &s.snapshot.Towers[i]
		if t.Tile.X == tx && t.Tile.Y == ty {
			return t
		}
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.snapshot, s.hoveredTower())
	s.hud.Draw(screen, s.snapshot, s.selected)
}

func (s *PlayState) Exit() {}
