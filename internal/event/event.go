package event

// EventType - тип события
type EventType string

// Any - подписка на все события сразу.
const Any EventType = "*"

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher рассылает события синхронно: все обработчики отрабатывают
// до возврата из Dispatch. Очереди нет.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    uint64
}

// NewDispatcher создает новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe подписывает listener на eventType. Возвращаемая функция
// отменяет подписку; повторный вызов ничего не делает.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.unsubscribe(eventType, id) }
}

// SubscribeFunc - то же, что Subscribe, для функции.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) (unsubscribe func()) {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

func (d *Dispatcher) unsubscribe(eventType EventType, id uint64) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			// Новый срез: текущие рассылки продолжают работать со старым.
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			d.listeners[eventType] = next
			return
		}
	}
}

// Dispatch отправляет событие подписчикам типа, затем подписчикам Any.
// Подписки, добавленные во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.snapshot(event.Type) {
		s.listener.OnEvent(event)
	}
	if event.Type == Any {
		return
	}
	for _, s := range d.snapshot(Any) {
		s.listener.OnEvent(event)
	}
}

// Publish - сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Publish(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}

func (d *Dispatcher) snapshot(t EventType) []subscription {
	subs := d.listeners[t]
	if len(subs) == 0 {
		return nil
	}
	return subs[:len(subs):len(subs)]
}
