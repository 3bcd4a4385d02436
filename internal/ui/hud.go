package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
)

// HUD - деньги, здоровье, таймер волны, статус и выбранный тип башни.
type HUD struct {
	Face        font.Face
	Wave        *WaveIndicator
	PauseButton *PauseButton
	ShowDebug   bool
}

func NewHUD() *HUD {
	return &HUD{
		Face:        basicfont.Face7x13,
		Wave:        NewWaveIndicator(config.ScreenWidth-2, 1),
		PauseButton: NewPauseButton(config.ScreenWidth-8, config.ScreenHeight-8, 6, config.TextLightColor, config.SpawnColor),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, selected defs.TowerType) {
	s := snap.State
	lineHeight := h.Face.Metrics().Height.Ceil()

	// Подложка под верхнюю строку
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, float32(lineHeight+2), color.RGBA{0, 0, 0, 140}, false)
	text.Draw(screen, fmt.Sprintf("$%d HP%d %ds", s.Money, s.PlayerHealth, s.NextWaveIn), h.Face, 2, lineHeight-1, config.TextLightColor)
	h.Wave.Draw(screen, s.Wave, h.Face)

	// Статус и тип башни внизу
	bottom := config.ScreenHeight - 3
	vector.DrawFilledRect(screen, 0, float32(bottom-lineHeight+1), config.ScreenWidth, float32(lineHeight+2), color.RGBA{0, 0, 0, 140}, false)
	status := s.StatusText
	if snap.State.PlayerHealth <= 0 {
		status = config.StatusGameOver
	}
	text.Draw(screen, status, h.Face, 2, bottom, config.TextLightColor)

	h.PauseButton.SetPaused(!s.Running)
	h.PauseButton.Draw(screen)

	idx := int(selected)
	if idx >= 0 && idx < len(config.TowerColors) {
		vector.DrawFilledCircle(screen, config.ScreenWidth-22, float32(config.ScreenHeight-8), 4, config.TowerColors[idx], true)
	}

	if h.ShowDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f\nE%d B%d", ebiten.ActualTPS(), len(snap.Enemies), len(snap.Bullets)), 2, lineHeight+4)
	}
}
