package app

import (
	"time"

	"pdf-reader/internal/eventbus"
	"pdf-reader/internal/logger"
	"pdf-reader/internal/router"
	"pdf-reader/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle ties the router subscription to the window and stops the
// event surface on exit.
type Lifecycle struct {
	router   *router.Router
	bus      *eventbus.Bus
	shutdown *shutdown.Manager
	logger   logger.Logger
}

func NewLifecycle(r *router.Router, bus *eventbus.Bus, log logger.Logger) *Lifecycle {
	m := shutdown.NewManager(log, 5*time.Second)
	m.Register("event bus", bus)
	m.Register("router", shutdown.Func(r.Detach))

	return &Lifecycle{
		router:   r,
		bus:      bus,
		shutdown: m,
		logger:   log,
	}
}

// AttachWindow connects the router to the event surface for as long as
// window is open. Activations after the window closes are dropped.
func (l *Lifecycle) AttachWindow(window fyne.Window) {
	l.router.OnActivation(l.bus.Surface())

	window.SetOnClosed(func() {
		l.logger.Info("Lifecycle", "window closed", nil)
		l.router.Detach()
	})
}

func (l *Lifecycle) ListenSignals(onSignal func()) func() {
	return l.shutdown.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.shutdown.Shutdown()
}
