package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/curve"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) of(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newWorld() (*entity.ECS, *event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.Any, rec)
	return entity.NewECS(), d, rec
}

// straightPath - горизонтальный путь длиной 100px.
func straightPath() *curve.Path {
	return curve.New([]curve.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
}

func travelingEnemy(x, y, progress float64, health int) *component.Enemy {
	return &component.Enemy{
		Health:    health,
		MaxHealth: health,
		Bounty:    10,
		Progress:  progress,
		State:     component.EnemyTraveling,
		Position:  component.Position{X: x, Y: y},
	}
}

func gunTower(x, y float64) *component.Tower {
	return &component.Tower{
		Position:    component.Position{X: x, Y: y},
		Damage:      10,
		Range:       50,
		TurnSpeed:   0.015,
		AttackSpeed: 300,
		Level:       1,
		LastFiredAt: -1e18,
	}
}
