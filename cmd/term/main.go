// cmd/term/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/sfx/device"
	"go-creep-defense/internal/termview"
)

const frameInterval = 16 * time.Millisecond

func main() {
	// Терминал занят картой, поэтому лог пишем в файл.
	logFile, err := os.OpenFile("creep-defense-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	game, m, err := app.NewGameFromSettings(settings)
	if err != nil {
		log.Fatal(err)
	}

	if settings.Sound {
		if _, stop, err := device.Start(game.EventDispatcher, 1); err != nil {
			// Без звука играть можно.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer stop()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	view := termview.New(screen, m)
	run(screen, view, game)
}

func run(screen tcell.Screen, view *termview.View, game *app.Game) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	last := start
	for {
		select {
		case ev := <-events:
			if !handleInput(ev, screen, view, game) {
				return
			}
		case t := <-ticker.C:
			delta := float64(t.Sub(last).Milliseconds())
			if delta > config.MaxDeltaTime {
				delta = config.MaxDeltaTime
			}
			last = t
			game.Update(float64(t.Sub(start).Milliseconds()), delta)
			view.Draw(game.Snapshot())
		}
	}
}

func handleInput(ev tcell.Event, screen tcell.Screen, view *termview.View, game *app.Game) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			view.MoveCursor(0, -1)
		case tcell.KeyDown:
			view.MoveCursor(0, 1)
		case tcell.KeyLeft:
			view.MoveCursor(-1, 0)
		case tcell.KeyRight:
			view.MoveCursor(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '1':
				view.TowerType = defs.TowerNormal
			case '2':
				view.TowerType = defs.TowerLaser
			case '3':
				view.TowerType = defs.TowerAir
			case ' ':
				game.PlaceTower(view.CursorX, view.CursorY, view.TowerType)
			case 'w':
				game.StartWave()
			case 'p':
				game.Pause()
			case 'r':
				game.Resume()
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
