// Package router forwards native menu activations to the application's UI
// surface.
//
// The router is driven by the host event loop. All methods are expected to
// run on that loop, so nothing here is locked.
package router

import (
	"pdf-reader/internal/logger"
)

// Activation is the payload of one menu activation: the id chosen when the
// menu tree was built.
type Activation struct {
	ID string
}

// Handler receives forwarded activations. It must not block the event loop.
type Handler func(Activation)

// Router owns the single standing subscription of the UI surface.
type Router struct {
	handler Handler
	logger  logger.Logger
}

func New(log logger.Logger) *Router {
	if log == nil {
		log = logger.NewNop()
	}
	return &Router{logger: log}
}

// OnActivation registers the receiving surface, replacing any previous one.
// A nil handler is the same as Detach.
func (r *Router) OnActivation(h Handler) {
	r.handler = h
	r.logger.Debug("Router", "surface attached", map[string]interface{}{
		"attached": h != nil,
	})
}

// Detach removes the receiving surface. Activations that follow are dropped.
func (r *Router) Detach() {
	r.handler = nil
	r.logger.Debug("Router", "surface detached", nil)
}

// Attached reports whether a surface is currently registered.
func (r *Router) Attached() bool {
	return r.handler != nil
}

// Activate forwards id verbatim to the registered surface. The id is not
// checked against the menu tree. With no surface the activation is dropped.
func (r *Router) Activate(id string) {
	h := r.handler
	if h == nil {
		r.logger.Debug("Router", "activation dropped, no surface", map[string]interface{}{
			"id": id,
		})
		return
	}
	h(Activation{ID: id})
}

// ChanHandler adapts a channel endpoint. Sends never block; when the channel
// is full the activation is dropped.
func ChanHandler(ch chan<- Activation) Handler {
	return func(a Activation) {
		select {
		case ch <- a:
		default:
		}
	}
}
