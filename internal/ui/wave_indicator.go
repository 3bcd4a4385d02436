package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-creep-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int // правый верхний угол
	Color        color.Color
	OutlineColor color.Color
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: config.BackgroundColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	str := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.HealthBarColor // Красный для последней волны десятка
	}

	width := font.MeasureString(face, str).Ceil()
	x := i.X - width
	y := i.Y + face.Metrics().Ascent.Ceil()

	// Обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, str, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, str, face, x, y, textColor)
}
