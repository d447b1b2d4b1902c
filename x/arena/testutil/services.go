package testutil

import (
	"context"
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"google.golang.org/protobuf/runtime/protoiface"
)

// HeaderService serves a settable block header.
type HeaderService struct {
	Info header.Info
}

func NewHeaderService(height int64, t time.Time) *HeaderService {
	return &HeaderService{Info: header.Info{Height: height, Time: t, ChainID: "arena-test"}}
}

func (h *HeaderService) GetHeaderInfo(context.Context) header.Info {
	return h.Info
}

// Advance moves to the next block d later.
func (h *HeaderService) Advance(d time.Duration) {
	h.Info.Height++
	h.Info.Time = h.Info.Time.Add(d)
}

// Event is one recorded key/value event.
type Event struct {
	Type       string
	Attributes map[string]string
}

// EventService records every emitted event.
type EventService struct {
	Events []Event
}

func (s *EventService) EventManager(context.Context) event.Manager {
	return eventManager{s}
}

// OfType returns the recorded events of type typ in emission order.
func (s *EventService) OfType(typ string) []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func (s *EventService) Reset() { s.Events = nil }

type eventManager struct {
	svc *EventService
}

func (m eventManager) Emit(_ context.Context, ev protoiface.MessageV1) error {
	m.svc.Events = append(m.svc.Events, Event{Type: ev.String()})
	return nil
}

func (m eventManager) EmitKV(_ context.Context, eventType string, attrs ...event.Attribute) error {
	e := Event{Type: eventType, Attributes: make(map[string]string, len(attrs))}
	for _, a := range attrs {
		e.Attributes[a.Key] = a.Value
	}
	m.svc.Events = append(m.svc.Events, e)
	return nil
}

func (m eventManager) EmitNonConsensus(ctx context.Context, ev protoiface.MessageV1) error {
	return m.Emit(ctx, ev)
}
