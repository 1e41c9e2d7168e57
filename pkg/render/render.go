// Package render describes shape updates produced by the board and the
// surface they are applied to.
package render

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/tictactoe/pkg/shapes"
)

var ErrUnknownHandle = errors.New("unknown shape handle")

// Handle identifies a shape created on a Surface. The zero Handle is used in
// a Request to ask for a new shape.
type Handle string

const NewShape Handle = ""

// Layer orders shapes on a surface; higher layers are drawn on top.
type Layer int

const (
	LayerGrid    Layer = 0
	LayerMarks   Layer = 10
	LayerPreview Layer = 20
)

// Request is one shape update. A request with the NewShape handle creates a
// persistent shape on Layer, any other handle replaces that shape's outline.
type Request struct {
	Handle  Handle
	Layer   Layer
	Outline shapes.Outline
}

func (r Request) IsNew() bool {
	return r.Handle == NewShape
}

// Surface is a drawing target for vector shapes.
// Implementations are only used from the frame loop and need not be
// thread-safe.
type Surface interface {
	// Create adds a persistent shape and returns its handle.
	Create(layer Layer, outline shapes.Outline) (Handle, error)
	// Update replaces the outline of an existing shape.
	Update(handle Handle, outline shapes.Outline) error
	// Clear removes every shape.
	Clear() error
}

// Apply applies requests to surface in order.
func Apply(surface Surface, requests []Request) error {
	for _, req := range requests {
		if req.IsNew() {
			if _, err := surface.Create(req.Layer, req.Outline); err != nil {
				return fmt.Errorf("failed to create shape: %v", err)
			}
			continue
		}
		if err := surface.Update(req.Handle, req.Outline); err != nil {
			return fmt.Errorf("failed to update shape %s: %v", req.Handle, err)
		}
	}
	return nil
}
