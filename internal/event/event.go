// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки внутри того же тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все события сразу
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
