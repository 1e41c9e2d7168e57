package render

import (
	"fmt"
	"sort"

	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/google/uuid"
)

// Shape is a shape held by an InMemorySurface.
type Shape struct {
	Handle  Handle
	Layer   Layer
	Outline shapes.Outline
	// Updates counts how many times the outline was replaced.
	Updates int
}

// InMemorySurface keeps shapes in memory. It backs headless runs and tests.
type InMemorySurface struct {
	shapes map[Handle]*Shape
	order  []Handle
}

var _ Surface = &InMemorySurface{}

func NewInMemorySurface() *InMemorySurface {
	return &InMemorySurface{
		shapes: make(map[Handle]*Shape),
	}
}

func (s *InMemorySurface) Create(layer Layer, outline shapes.Outline) (Handle, error) {
	handle := Handle(uuid.NewString())
	s.shapes[handle] = &Shape{
		Handle:  handle,
		Layer:   layer,
		Outline: outline,
	}
	s.order = append(s.order, handle)
	return handle, nil
}

func (s *InMemorySurface) Update(handle Handle, outline shapes.Outline) error {
	shape, ok := s.shapes[handle]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}
	shape.Outline = outline
	shape.Updates++
	return nil
}

func (s *InMemorySurface) Clear() error {
	s.shapes = make(map[Handle]*Shape)
	s.order = nil
	return nil
}

// Get returns the shape with the given handle, or nil.
func (s *InMemorySurface) Get(handle Handle) *Shape {
	return s.shapes[handle]
}

// Shapes returns the shapes sorted by layer, then by creation order.
func (s *InMemorySurface) Shapes() []*Shape {
	out := make([]*Shape, 0, len(s.order))
	for _, handle := range s.order {
		out = append(out, s.shapes[handle])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer < out[j].Layer
	})
	return out
}

// Layer returns the shapes on layer in creation order.
func (s *InMemorySurface) Layer(layer Layer) []*Shape {
	var out []*Shape
	for _, handle := range s.order {
		if shape := s.shapes[handle]; shape.Layer == layer {
			out = append(out, shape)
		}
	}
	return out
}
