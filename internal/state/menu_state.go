// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-creep-defense/internal/config"
)

// MenuState - заставка до начала партии. Пробел или клик запускает игру.
type MenuState struct {
	sm      *StateMachine
	newGame func() State
}

func NewMenuState(sm *StateMachine, newGame func() State) *MenuState {
	return &MenuState{sm: sm, newGame: newGame}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(now, deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.newGame())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "CREEP DEFENSE", face, 35, config.ScreenHeight/2-10, config.TextLightColor)
	text.Draw(screen, "press space", face, 42, config.ScreenHeight/2+12, config.BuildableColor)
}

func (m *MenuState) Exit() {}
