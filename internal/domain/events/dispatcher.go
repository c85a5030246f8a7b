package events

import (
	"errors"
	"strings"
	"sync"

	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

// Dispatcher is a synchronous in-process event bus. It maps an event name
// to the ordered list of handlers registered for it and fans each event
// out on the calling goroutine. Create one per application (or test) scope
// and pass it by reference; there is no package-level instance.
type Dispatcher struct {
	mu       sync.RWMutex
	log      *logger.Logger
	handlers map[string][]Handler
}

func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		log:      log.With("component", "EventDispatcher"),
		handlers: make(map[string][]Handler),
	}
}

// Register appends handler to the list for name. Order of registration is
// the order of invocation. Registering the same instance twice means it
// runs twice per notify; callers wanting idempotence check Has first.
func (d *Dispatcher) Register(name string, handler Handler) {
	name = strings.TrimSpace(name)
	if name == "" || handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[name] = append(d.handlers[name], handler)
	d.log.Debug("handler registered", "event", name, "count", len(d.handlers[name]))
}

// Unregister removes the first entry for name holding this exact handler
// instance. No-op when the handler was never registered.
func (d *Dispatcher) Unregister(name string, handler Handler) {
	name = strings.TrimSpace(name)
	if name == "" || handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	hs, ok := d.handlers[name]
	if !ok {
		return
	}
	for i, h := range hs {
		if h == handler {
			d.handlers[name] = append(hs[:i:i], hs[i+1:]...)
			if len(d.handlers[name]) == 0 {
				delete(d.handlers, name)
			}
			d.log.Debug("handler unregistered", "event", name)
			return
		}
	}
}

// Clear drops every registration. Test scopes use it between cases.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]Handler)
}

// Has reports whether this exact handler instance is registered for name.
func (d *Dispatcher) Has(name string, handler Handler) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, h := range d.handlers[strings.TrimSpace(name)] {
		if h == handler {
			return true
		}
	}
	return false
}

// Handlers returns a copy of the registration list for name, in order.
func (d *Dispatcher) Handlers(name string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	hs := d.handlers[strings.TrimSpace(name)]
	if len(hs) == 0 {
		return nil
	}
	out := make([]Handler, len(hs))
	copy(out, hs)
	return out
}

// Notify invokes every handler registered for event.Name(), synchronously
// and in registration order. No handlers registered is a silent no-op.
// A failing handler does not stop the remaining ones; each failure is
// logged and the joined error is returned so callers never lose it. The
// registry is unchanged by failures.
func (d *Dispatcher) Notify(event Event) error {
	if event == nil {
		return nil
	}
	d.mu.RLock()
	hs := d.handlers[event.Name()]
	snapshot := make([]Handler, len(hs))
	copy(snapshot, hs)
	d.mu.RUnlock()

	if len(snapshot) == 0 {
		return nil
	}

	var errs []error
	for _, h := range snapshot {
		if err := h.Handle(event); err != nil {
			d.log.Error("handler failed", "event", event.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
