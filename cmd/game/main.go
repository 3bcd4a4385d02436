// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/sfx/device"
	"go-creep-defense/internal/state"
)

const startFromGame = false // true - начинать с игры, false - с заставки

type AppGame struct {
	stateMachine   *state.StateMachine
	startTime      time.Time
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Milliseconds())
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(float64(now.Sub(a.startTime).Milliseconds()), deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	game, m, err := app.NewGameFromSettings(settings)
	if err != nil {
		log.Fatal(err)
	}

	if settings.Sound {
		if _, stop, err := device.Start(game.EventDispatcher, 1); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer stop()
		}
	}

	sm := state.NewStateMachine()
	play := func() state.State { return state.NewPlayState(sm, game, m) }
	if startFromGame {
		sm.SetState(play())
	} else {
		sm.SetState(state.NewMenuState(sm, play))
	}

	now := time.Now()
	appGame := &AppGame{
		stateMachine:   sm,
		startTime:      now,
		lastUpdateTime: now,
	}
	ebiten.SetWindowSize(config.ScreenWidth*settings.Scale, config.ScreenHeight*settings.Scale)
	ebiten.SetWindowTitle("Creep Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
