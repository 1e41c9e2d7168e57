package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject whose children are drawn in z-index
// order. Children with equal z-index keep their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if err := o.BaseObject.AddChild(id, child); err != nil {
		return err
	}
	child.SetParent(o)
	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = append(o.sorted, nil)
	copy(o.sorted[i+1:], o.sorted[i:])
	o.sorted[i] = child
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	if err := o.BaseObject.RemoveChild(id); err != nil {
		return err
	}
	for i, obj := range o.sorted {
		if obj.GetID() == id {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("child not found in sorted list")
}

// RemoveAll destroys and removes every child.
func (o *SortedZIndexObject) RemoveAll() error {
	ids := make([]string, 0, len(o.sorted))
	for _, obj := range o.sorted {
		ids = append(ids, obj.GetID())
	}
	for _, id := range ids {
		if err := o.RemoveChild(id); err != nil {
			return fmt.Errorf("failed to remove child %s: %v", id, err)
		}
	}
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
