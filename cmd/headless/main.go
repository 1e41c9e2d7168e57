// Command headless plays a sequence of raw key codes against a board without
// opening a window and logs the resulting marks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/game"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/cbodonnell/tictactoe/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to environment variables)")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	keys := flag.String("keys", "38,32,39,32", "Comma separated raw key codes, one press per frame")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	codes, err := parseKeys(*keys)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse keys: %v", err))
	}

	inputQueue := queue.NewInMemoryQueue(queue.QueueBufferSize)
	g, err := game.NewGame(game.NewGameOptions{
		Config:     cfg,
		InputQueue: inputQueue,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	surface := render.NewInMemorySurface()
	if err := g.Start(surface); err != nil {
		panic(fmt.Sprintf("Failed to start game: %v", err))
	}

	for _, code := range codes {
		for _, pressed := range []bool{true, false} {
			if err := inputQueue.Enqueue(types.InputEvent{RawCode: code, Pressed: pressed}); err != nil {
				panic(fmt.Sprintf("Failed to enqueue key %d: %v", code, err))
			}
		}
		if err := g.Update(surface); err != nil {
			panic(fmt.Sprintf("Failed to update game: %v", err))
		}
	}

	result := struct {
		game.State
		Shapes int `json:"shapes"`
	}{
		State:  g.State(),
		Shapes: len(surface.Shapes()),
	}
	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		panic(fmt.Sprintf("Failed to encode result: %v", err))
	}
}

func parseKeys(s string) ([]int, error) {
	var codes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		code, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid key code %q: %v", field, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
