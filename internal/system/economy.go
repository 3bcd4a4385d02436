package system

import (
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/event"
)

// EconomySystem - единственное место, где меняются деньги и здоровье игрока.
// Слушает money:gain и base:damage и сообщает о новых значениях.
type EconomySystem struct {
	state           *component.GameState
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(state *component.GameState, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{state: state, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.MoneyGain, es)
	eventDispatcher.Subscribe(event.BaseDamage, es)
	return es
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MoneyGain:
		amount, ok := e.Data.(int)
		if !ok {
			log.Printf("EconomySystem: unexpected %s payload %T", e.Type, e.Data)
			return
		}
		s.state.Money += amount
		s.state.Clamp()
		s.eventDispatcher.Publish(event.MoneyChanged, s.state.Money)

	case event.BaseDamage:
		wasAlive := s.state.PlayerHealth > 0
		s.state.PlayerHealth--
		s.state.Clamp()
		s.eventDispatcher.Publish(event.HealthChanged, s.state.PlayerHealth)
		if wasAlive && s.state.PlayerHealth == 0 {
			s.state.StatusText = config.StatusGameOver
			s.eventDispatcher.Publish(event.StatusChanged, s.state.StatusText)
			s.eventDispatcher.Publish(event.GameOver, nil)
		}
	}
}
