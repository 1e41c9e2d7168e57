package game

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/client/input"
	"github.com/cbodonnell/tictactoe/client/scenes"
	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// cfg is the board and screen configuration.
	cfg *config.Config
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// board is the board scene while in GameModePlay.
	board *scenes.BoardScene
}

type GameMode int

const (
	GameModePlay GameMode = iota
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModePlay:
		return "Play"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Config *config.Config
	Debug  bool
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	g := &Game{
		cfg:   opts.Config,
		debug: opts.Debug,
	}

	if err := g.loadBoard(); err != nil {
		return nil, fmt.Errorf("failed to load board scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadBoard() error {
	board, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		Config: g.cfg,
		Debug:  g.debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(board); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.board = board
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg, g.cfg.Screen.Height)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.board = nil
	g.mode = GameModeError
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		if g.mode != GameModePlay {
			return fmt.Errorf("failed to update scene: %v", err)
		}
		log.Error("Board error: %v", err)
		if err := g.loadError("Something went wrong"); err != nil {
			return fmt.Errorf("failed to load error scene: %v", err)
		}
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.board.Reset(); err != nil {
				return fmt.Errorf("failed to reset board: %v", err)
			}
		}
	case GameModeError:
		if input.IsNegativeJustPressed() {
			if err := g.loadBoard(); err != nil {
				return fmt.Errorf("failed to load board scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
