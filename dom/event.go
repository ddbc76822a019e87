package dom

// Listener receives events dispatched to the element it is attached to.
type Listener func(event *Event)

// Event is a named occurrence carrying an optional payload.
type Event struct {
	Type    string
	Detail  any
	Bubbles bool

	// Target is the element the event was dispatched on.
	Target Element

	// CurrentTarget is the element whose listeners are running.
	CurrentTarget Element

	stopped          bool
	immediateStopped bool
}

// NewEvent returns a bubbling event of the given type carrying detail.
func NewEvent(eventType string, detail any) *Event {
	return &Event{
		Type:    eventType,
		Detail:  detail,
		Bubbles: true,
	}
}

// StopPropagation prevents delivery to further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation also skips the remaining listeners of the
// current element.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.immediateStopped = true
}

// Stopped reports whether propagation was stopped by a listener.
func (e *Event) Stopped() bool {
	return e.stopped
}

type eventHandler interface {
	handleEvent(event *Event) bool
}

func dispatch(target Element, event *Event) bool {
	if target == nil || event == nil {
		return false
	}

	event.Target = target
	delivered := false

	for current := target; current != nil; current = current.Parent() {
		event.CurrentTarget = current

		if h, ok := current.(eventHandler); ok && h.handleEvent(event) {
			delivered = true
		}

		if event.stopped || !event.Bubbles {
			break
		}
	}

	event.CurrentTarget = nil
	return delivered
}
