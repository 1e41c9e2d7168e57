package scenes

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/client/fonts"
	"github.com/cbodonnell/tictactoe/client/input"
	"github.com/cbodonnell/tictactoe/client/objects"
	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/game"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BoardScene hosts one game: it feeds frame input into the game's queue and
// applies the resulting shape updates to its object tree.
type BoardScene struct {
	*BaseScene

	game       *game.Game
	inputQueue queue.Queue
	poller     *input.Poller
	viewport   objects.Viewport
	surface    *objects.Surface
	debug      bool

	// events is reused across frames.
	events []types.InputEvent
}

type BoardSceneOptions struct {
	Config *config.Config
	Debug  bool
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (*BoardScene, error) {
	inputQueue := queue.NewInMemoryQueue(queue.QueueBufferSize)
	g, err := game.NewGame(game.NewGameOptions{
		Config:     opts.Config,
		InputQueue: inputQueue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %v", err)
	}

	viewport := objects.Viewport{
		Width:  float64(opts.Config.Screen.Width),
		Height: float64(opts.Config.Screen.Height),
	}
	root := objects.NewSortedZIndexObject("board-root")
	shapesRoot := objects.NewSortedZIndexObject("board-shapes")

	s := &BoardScene{
		BaseScene:  NewBaseScene(root),
		game:       g,
		inputQueue: inputQueue,
		poller:     input.NewPoller(),
		viewport:   viewport,
		surface:    objects.NewSurface(shapesRoot, viewport),
		debug:      opts.Debug,
	}

	status := objects.NewTextOverlayObject("overlay-status", fonts.TTFNormalFont, viewport.Height-40, s.status)
	for _, child := range []objects.GameObject{shapesRoot, status} {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return s, nil
}

func (s *BoardScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	if err := s.game.Start(s.surface); err != nil {
		return fmt.Errorf("failed to start game: %v", err)
	}
	return nil
}

func (s *BoardScene) status() string {
	return fmt.Sprintf("%s to move", s.game.State().Active)
}

// Reset starts a new board.
func (s *BoardScene) Reset() error {
	if err := s.game.Reset(s.surface); err != nil {
		return fmt.Errorf("failed to reset game: %v", err)
	}
	log.Info("Board reset")
	return nil
}

func (s *BoardScene) Update() error {
	if input.IsDebugJustPressed() {
		s.debug = !s.debug
	}

	s.events = s.poller.AppendKeyEvents(s.events[:0])
	for _, event := range s.events {
		if err := s.inputQueue.Enqueue(event); err != nil {
			log.Warn("Dropped input event %d: %v", event.RawCode, err)
		}
	}
	if x, y, ok := s.poller.PointerJustPressed(); ok {
		p := s.viewport.ToWorld(x, y)
		if err := s.inputQueue.Enqueue(types.PointerEvent{X: p.X, Y: p.Y}); err != nil {
			log.Warn("Dropped pointer event at %s: %v", p, err)
		}
	}

	if err := s.game.Update(s.surface); err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}

	return s.BaseScene.Update()
}

func (s *BoardScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	if s.debug {
		s.drawDebugOverlay(screen)
	}
}

func (s *BoardScene) drawDebugOverlay(screen *ebiten.Image) {
	state := s.game.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Cursor: %s %s", state.Cursor, state.CursorPosition))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Active: %s", state.Active))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Marks: %d (%d here)", len(state.Marks), state.MarksAtCursor))
}
