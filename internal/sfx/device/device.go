// Package device выводит звук sfx.Player на аудиоустройство через beep/speaker.
// Вынесен отдельно, чтобы пакет sfx и его тесты не требовали звуковой карты.
package device

import (
	"time"

	"github.com/gopxl/beep/speaker"

	"go-creep-defense/internal/event"
	"go-creep-defense/internal/sfx"
)

// speakerLock - sync.Locker поверх глобальной блокировки speaker.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Start открывает устройство, подписывает плеер на события и запускает вывод.
// Возвращаемая функция отписывает плеер и закрывает устройство.
func Start(d *event.Dispatcher, volume float64) (*sfx.Player, func(), error) {
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
		return nil, nil, err
	}
	player := sfx.NewPlayer(sfx.SampleRate, volume, speakerLock{})
	detach := player.Attach(d)
	speaker.Play(player)

	stop := func() {
		detach()
		speaker.Clear()
		speaker.Close()
	}
	return player, stop, nil
}
