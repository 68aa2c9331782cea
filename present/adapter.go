package present

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/solarlune/rotations"
)

// Renderer is something that displays a rotation, like a window, a terminal, or a scene file.
type Renderer interface {
	Render(result Result) error
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func(result Result) error

func (f RendererFunc) Render(result Result) error {
	return f(result)
}

// Adapter sits between input and the renderers: it computes each submitted Request, keeps the latest Result as the
// displayed orientation, and hands it to every Renderer. It's safe for an input goroutine and a render loop to share.
type Adapter struct {
	Converter rotations.Converter
	Logger    *log.Logger

	mutex     sync.RWMutex
	renderers []Renderer
	current   Result
}

// NewAdapter creates a new Adapter displaying the identity rotation. Pass a nil logger to discard log output.
func NewAdapter(conv rotations.Converter, logger *log.Logger, renderers ...Renderer) *Adapter {

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Adapter{
		Converter: conv,
		Logger:    logger,
		renderers: renderers,
		current:   IdentityResult(),
	}

}

// AddRenderer adds a Renderer; it's handed the current Result right away.
func (adapter *Adapter) AddRenderer(renderer Renderer) error {

	adapter.mutex.Lock()
	adapter.renderers = append(adapter.renderers, renderer)
	current := adapter.current
	adapter.mutex.Unlock()

	return adapter.render([]Renderer{renderer}, current)

}

// Submit computes the Request. On success, the Result replaces the displayed orientation and every Renderer is called
// with it; if any fail, their errors are logged and returned together, but the Result still stands. On failure to
// compute, the displayed orientation is left alone.
func (adapter *Adapter) Submit(req Request) (Result, error) {

	result, err := Compute(adapter.Converter, req)
	if err != nil {
		adapter.Logger.Printf("rejected input: %v", err)
		return Result{}, err
	}

	adapter.mutex.Lock()
	adapter.current = result
	renderers := append([]Renderer(nil), adapter.renderers...)
	adapter.mutex.Unlock()

	return result, adapter.render(renderers, result)

}

// Current returns the displayed Result.
func (adapter *Adapter) Current() Result {
	adapter.mutex.RLock()
	defer adapter.mutex.RUnlock()
	return adapter.current
}

func (adapter *Adapter) render(renderers []Renderer, result Result) error {

	var errs []error

	for i, r := range renderers {
		if err := r.Render(result); err != nil {
			adapter.Logger.Printf("renderer %d failed: %v", i, err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rendering: %w", errors.Join(errs...))
	}

	return nil

}
