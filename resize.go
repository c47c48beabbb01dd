package wavemenu

// Container reports the layout box the surface must match.
type Container interface {
	// Bounds returns the current content box size in layout units.
	Bounds() (width, height float64)
}

// ContainerFunc adapts a plain function to Container.
type ContainerFunc func() (width, height float64)

// Bounds calls f.
func (f ContainerFunc) Bounds() (width, height float64) {
	return f()
}

// ResizeNotifier delivers container resize notifications.
type ResizeNotifier interface {
	// OnResize registers fn and returns a handle that unregisters it.
	OnResize(fn func()) CallbackHandle
}

type resizeHandler struct {
	id uint32
	fn func()
}

// ResizeHub is a ResizeNotifier the host fires whenever its layout changes.
// The zero value is ready to use.
type ResizeHub struct {
	handlers []resizeHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered resize callback.
type CallbackHandle struct {
	id  uint32
	hub *ResizeHub
}

// Remove unregisters the callback. Calling Remove more than once, or on a
// zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.hub == nil {
		return
	}
	h.hub.handlers = removeResizeHandler(h.hub.handlers, h.id)
}

func removeResizeHandler(s []resizeHandler, id uint32) []resizeHandler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// OnResize registers fn to run on every Notify.
func (r *ResizeHub) OnResize(fn func()) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, hub: r}
}

// Notify runs every registered handler synchronously, in registration order.
func (r *ResizeHub) Notify() {
	for _, h := range r.handlers {
		h.fn()
	}
}

// Len returns the number of registered handlers.
func (r *ResizeHub) Len() int {
	return len(r.handlers)
}
