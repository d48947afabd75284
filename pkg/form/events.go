package form

// EventType names the mutation that produced an Event.
type EventType string

const (
	EventChange   EventType = "change"
	EventBlur     EventType = "blur"
	EventError    EventType = "error"
	EventClear    EventType = "clear"
	EventValidate EventType = "validate"
	EventReset    EventType = "reset"
	EventValues   EventType = "values"
	EventErrors   EventType = "errors"
)

// Event describes a mutation that has already been applied. Field is empty
// for form-wide events (validate, reset, values, errors).
type Event struct {
	Type  EventType
	Field string
}

// Listener receives events synchronously, in mutation order. Listeners must
// not mutate the form they observe.
type Listener func(Event)

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (f *Form) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	id := f.nextListener
	f.nextListener++
	if f.listeners == nil {
		f.listeners = make(map[int]Listener)
	}
	f.listeners[id] = fn
	f.order = append(f.order, id)

	return func() {
		if _, ok := f.listeners[id]; !ok {
			return
		}
		delete(f.listeners, id)
		for i, existing := range f.order {
			if existing == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
}

func (f *Form) emit(kind EventType, field string) {
	if len(f.order) == 0 {
		return
	}
	event := Event{Type: kind, Field: field}
	ids := append([]int(nil), f.order...)
	for _, id := range ids {
		if fn, ok := f.listeners[id]; ok {
			fn(event)
		}
	}
}
