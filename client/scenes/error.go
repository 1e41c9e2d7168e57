package scenes

import (
	"github.com/cbodonnell/tictactoe/client/fonts"
	"github.com/cbodonnell/tictactoe/client/objects"
)

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string, screenHeight int) (Scene, error) {
	root := objects.NewSortedZIndexObject("error-root")
	overlay := objects.NewTextOverlayObject("overlay-error", fonts.MPlusLargeFont, float64(screenHeight)/2, func() string {
		return msg
	})
	if err := root.AddChild(overlay.GetID(), overlay); err != nil {
		return nil, err
	}
	hint := objects.NewTextOverlayObject("overlay-error-hint", fonts.TTFSmallFont, float64(screenHeight)/2+40, func() string {
		return "Press Escape to start a new board"
	})
	if err := root.AddChild(hint.GetID(), hint); err != nil {
		return nil, err
	}
	return &ErrorScene{
		BaseScene: NewBaseScene(root),
	}, nil
}
