// Package drag turns pointer gestures into widget positions.
//
// A Surface stands for the whole viewport: pointer moves and releases are
// reported to it no matter which widget is under the pointer. Each draggable
// widget owns a Controller that subscribes to the surface for the length of
// one gesture only.
package drag

import "sync"

// Position is a screen-space offset.
type Position struct {
	X float32
	Y float32
}

// Add returns the vector sum.
func (position Position) Add(other Position) Position {
	return Position{X: position.X + other.X, Y: position.Y + other.Y}
}

// Sub returns the vector difference.
func (position Position) Sub(other Position) Position {
	return Position{X: position.X - other.X, Y: position.Y - other.Y}
}

// Listener receives viewport-wide pointer events.
type Listener interface {
	PointerMoved(at Position)
	PointerReleased(at Position)
	PointerLost()
}

// Surface fans pointer events out to the current subscribers.
type Surface struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{listeners: make(map[int]Listener)}
}

// Subscribe attaches listener until the returned subscription is released.
func (surface *Surface) Subscribe(listener Listener) *Subscription {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.nextID++
	id := surface.nextID
	surface.listeners[id] = listener
	return &Subscription{surface: surface, id: id}
}

// Listeners returns the number of attached listeners.
func (surface *Surface) Listeners() int {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return len(surface.listeners)
}

// Move reports a pointer move anywhere in the viewport.
func (surface *Surface) Move(at Position) {
	for _, listener := range surface.snapshot() {
		listener.PointerMoved(at)
	}
}

// Release reports the pointer going up anywhere in the viewport.
func (surface *Surface) Release(at Position) {
	for _, listener := range surface.snapshot() {
		listener.PointerReleased(at)
	}
}

// Cancel reports that the pointer was lost: window blur, capture loss, teardown.
func (surface *Surface) Cancel() {
	for _, listener := range surface.snapshot() {
		listener.PointerLost()
	}
}

func (surface *Surface) snapshot() []Listener {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	listeners := make([]Listener, 0, len(surface.listeners))
	for _, listener := range surface.listeners {
		listeners = append(listeners, listener)
	}
	return listeners
}

func (surface *Surface) detach(id int) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	delete(surface.listeners, id)
}

// Subscription is a scoped attachment to a Surface.
type Subscription struct {
	surface *Surface
	id      int
	once    sync.Once
}

// Release detaches the listener. Calling it more than once is harmless.
func (subscription *Subscription) Release() {
	if subscription == nil {
		return
	}
	subscription.once.Do(func() {
		subscription.surface.detach(subscription.id)
	})
}

// Controller tracks one widget's position across gestures.
type Controller struct {
	mu       sync.Mutex
	surface  *Surface
	position Position
	active   *gesture
	onMove   func(Position)
}

// NewController creates a controller for a widget starting at initial.
func NewController(surface *Surface, initial Position) *Controller {
	return &Controller{surface: surface, position: initial}
}

// OnMove registers a callback fired with every new position.
func (controller *Controller) OnMove(handler func(Position)) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.onMove = handler
}

// Position returns the current position.
func (controller *Controller) Position() Position {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.position
}

// Dragging reports whether a gesture is in progress.
func (controller *Controller) Dragging() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.active != nil
}

// PointerDown starts a gesture at the given pointer position. An unfinished
// gesture is ended first.
func (controller *Controller) PointerDown(at Position) {
	controller.mu.Lock()
	previous := controller.active
	controller.active = nil
	controller.mu.Unlock()
	previous.finish()

	current := &gesture{
		controller: controller,
		start:      at,
		origin:     controller.Position(),
	}
	current.subscription = controller.surface.Subscribe(current)
	controller.mu.Lock()
	controller.active = current
	controller.mu.Unlock()
}

// Close ends any gesture in progress.
func (controller *Controller) Close() {
	controller.mu.Lock()
	active := controller.active
	controller.active = nil
	controller.mu.Unlock()
	active.finish()
}

func (controller *Controller) moveTo(owner *gesture, position Position) {
	controller.mu.Lock()
	if controller.active != owner {
		controller.mu.Unlock()
		return
	}
	controller.position = position
	handler := controller.onMove
	controller.mu.Unlock()

	if handler != nil {
		handler(position)
	}
}

func (controller *Controller) end(owner *gesture) {
	controller.mu.Lock()
	if controller.active == owner {
		controller.active = nil
	}
	controller.mu.Unlock()
	owner.finish()
}

type gesture struct {
	controller   *Controller
	start        Position
	origin       Position
	subscription *Subscription
}

func (current *gesture) PointerMoved(at Position) {
	current.controller.moveTo(current, current.origin.Add(at.Sub(current.start)))
}

func (current *gesture) PointerReleased(at Position) {
	current.PointerMoved(at)
	current.controller.end(current)
}

func (current *gesture) PointerLost() {
	current.controller.end(current)
}

func (current *gesture) finish() {
	if current == nil {
		return
	}
	current.subscription.Release()
}
