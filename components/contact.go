package components

import (
	"fmt"

	"github.com/automoto/fowlplay/tags"
	"github.com/yohamta/donburi"
)

// ContactTag is stored as UserData on every physics shape so contact
// handlers can identify both participants without type assertions on
// game objects.
type ContactTag struct {
	Kind   tags.Kind
	Sensor tags.Sensor
	Entity donburi.Entity
}

func (t ContactTag) String() string {
	return fmt.Sprintf("%s/%s#%v", t.Kind, t.Sensor, t.Entity)
}

// ContactEvent is one begin or end transition reported by the physics step.
type ContactEvent struct {
	Begin bool
	A, B  ContactTag
}

// ContactQueue collects events during a physics step. It is shared by
// pointer with the chipmunk callbacks.
type ContactQueue struct {
	events []ContactEvent
}

func (q *ContactQueue) Push(ev ContactEvent) {
	q.events = append(q.events, ev)
}

// Drain returns the queued events and empties the queue.
func (q *ContactQueue) Drain() []ContactEvent {
	evs := q.events
	q.events = nil
	return evs
}

func (q *ContactQueue) Len() int {
	return len(q.events)
}
