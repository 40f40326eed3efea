package engine

import (
	"fmt"

	"conquest/game"
)

// EventLog is a bounded buffer of textual game events. Purely observational:
// nothing in the decision pipeline reads it.
type EventLog struct {
	capacity int
	events   []string
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = 20
	}
	return &EventLog{capacity: capacity}
}

func (l *EventLog) Add(message string) {
	l.events = append(l.events, message)
	if len(l.events) > l.capacity {
		l.events = l.events[1:]
	}
}

// Record translates an applied move report into event messages.
func (l *EventLog) Record(faction string, r *game.MoveReport) {
	if r == nil {
		return
	}
	if r.BaseDestroyed {
		l.Add(fmt.Sprintf("%s DEFEATED!", r.DefeatedFaction))
	}
	if r.TowerCaptured {
		l.Add(fmt.Sprintf("%s CAPTURED TOWER AT %s!", faction, r.Cell))
	}
	if r.PortalCaptured {
		l.Add(fmt.Sprintf("%s CAPTURED PORTAL AT %s!", faction, r.Cell))
	}
	if r.BridgeBuilt {
		l.Add(fmt.Sprintf("%s BUILT BRIDGE AT %s", faction, r.Cell))
	}
	if r.MountainConverted {
		l.Add(fmt.Sprintf("%s CONVERTED MOUNTAIN AT %s", faction, r.Cell))
	}
}

// Latest returns the buffered events, oldest first.
func (l *EventLog) Latest() []string {
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) Clear() {
	l.events = nil
}
