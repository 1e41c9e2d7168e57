package objects

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/google/uuid"
)

// Surface is a render.Surface that keeps one ShapeObject per shape under a
// z-sorted root.
type Surface struct {
	root     *SortedZIndexObject
	viewport Viewport
}

var _ render.Surface = &Surface{}

func NewSurface(root *SortedZIndexObject, viewport Viewport) *Surface {
	return &Surface{
		root:     root,
		viewport: viewport,
	}
}

func (s *Surface) Create(layer render.Layer, outline shapes.Outline) (render.Handle, error) {
	id := fmt.Sprintf("shape-%s", uuid.New().String())
	obj := NewShapeObject(id, int(layer), outline, s.viewport)
	if err := s.root.AddChild(id, obj); err != nil {
		return render.NewShape, fmt.Errorf("failed to add shape object: %v", err)
	}
	return render.Handle(id), nil
}

func (s *Surface) Update(handle render.Handle, outline shapes.Outline) error {
	obj := s.root.GetChild(string(handle))
	if obj == nil {
		return fmt.Errorf("%w: %s", render.ErrUnknownHandle, handle)
	}
	shape, ok := obj.(*ShapeObject)
	if !ok {
		return fmt.Errorf("failed to cast game object %s to *objects.ShapeObject", handle)
	}
	shape.SetOutline(outline)
	return nil
}

func (s *Surface) Clear() error {
	return s.root.RemoveAll()
}
