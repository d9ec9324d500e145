// Package event carries simulation events to optional listeners such as
// the sound player.
package event

// Type identifies an event.
type Type int

const (
	Fired          Type = iota // Player fired a laser
	EnemyFired                 // An enemy attack produced at least one laser
	EnemyHit                   // A laser hit an enemy that survived
	EnemyDestroyed             // A laser destroyed an enemy
	WaveStarted                // A new phase began and its wave is entering
	WaveReady                  // The pending wave reached formation
	Defeated                   // The player was hit
	Restarted                  // A fresh game started after game over
)

func (t Type) String() string {
	switch t {
	case Fired:
		return "fired"
	case EnemyFired:
		return "enemy_fired"
	case EnemyHit:
		return "enemy_hit"
	case EnemyDestroyed:
		return "enemy_destroyed"
	case WaveStarted:
		return "wave_started"
	case WaveReady:
		return "wave_ready"
	case Defeated:
		return "defeated"
	case Restarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single occurrence during a tick.
type Event struct {
	Type  Type
	Phase int
	X, Y  float64 // Where it happened, when meaningful
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribed listeners. It is not safe for
// concurrent use; it runs on the simulation goroutine.
type Dispatcher struct {
	listeners map[Type][]subscription
	all       []subscription
	nextID    uint64
}

// subscription pairs a listener with an id so it can be removed without
// comparing listener values, which ListenerFunc does not support.
type subscription struct {
	id uint64
	l  Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]subscription),
	}
}

// Subscribe registers l for events of type t. The returned func removes it.
func (d *Dispatcher) Subscribe(t Type, l Listener) (unsubscribe func()) {
	sub := d.newSubscription(l)
	d.listeners[t] = append(d.listeners[t], sub)
	return func() {
		d.listeners[t] = without(d.listeners[t], sub.id)
	}
}

// SubscribeAll registers l for every event type. The returned func removes it.
func (d *Dispatcher) SubscribeAll(l Listener) (unsubscribe func()) {
	sub := d.newSubscription(l)
	d.all = append(d.all, sub)
	return func() {
		d.all = without(d.all, sub.id)
	}
}

func (d *Dispatcher) newSubscription(l Listener) subscription {
	d.nextID++
	return subscription{id: d.nextID, l: l}
}

// without returns subs minus the subscription with the given id. It copies
// so a dispatch ranging over the old slice is unaffected.
func without(subs []subscription, id uint64) []subscription {
	kept := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	return kept
}

// Dispatch delivers e to its type subscribers, then to catch-all subscribers.
func (d *Dispatcher) Dispatch(e Event) {
	for _, s := range d.listeners[e.Type] {
		s.l.OnEvent(e)
	}
	for _, s := range d.all {
		s.l.OnEvent(e)
	}
}
