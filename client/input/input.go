package input

import (
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	rawinput "github.com/cbodonnell/tictactoe/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes maps ebiten keys to the raw key codes reported to the board.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeySpace:      rawinput.KeyCodeSpace,
	ebiten.KeyEnter:      13,
	ebiten.KeyEscape:     27,
	ebiten.KeyArrowLeft:  rawinput.KeyCodeLeft,
	ebiten.KeyArrowUp:    rawinput.KeyCodeUp,
	ebiten.KeyArrowRight: rawinput.KeyCodeRight,
	ebiten.KeyArrowDown:  rawinput.KeyCodeDown,
	ebiten.KeyA:          'A',
	ebiten.KeyB:          'B',
	ebiten.KeyC:          'C',
	ebiten.KeyD:          'D',
	ebiten.KeyE:          'E',
	ebiten.KeyF:          'F',
	ebiten.KeyG:          'G',
	ebiten.KeyH:          'H',
	ebiten.KeyI:          'I',
	ebiten.KeyJ:          'J',
	ebiten.KeyK:          'K',
	ebiten.KeyL:          'L',
	ebiten.KeyM:          'M',
	ebiten.KeyN:          'N',
	ebiten.KeyO:          'O',
	ebiten.KeyP:          'P',
	ebiten.KeyQ:          'Q',
	ebiten.KeyR:          'R',
	ebiten.KeyS:          'S',
	ebiten.KeyT:          'T',
	ebiten.KeyU:          'U',
	ebiten.KeyV:          'V',
	ebiten.KeyW:          'W',
	ebiten.KeyX:          'X',
	ebiten.KeyY:          'Y',
	ebiten.KeyZ:          'Z',
}

// gamepadCodes maps standard gamepad buttons onto the arrow and confirm codes.
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   int
}{
	{button: ebiten.StandardGamepadButtonLeftTop, code: rawinput.KeyCodeUp},
	{button: ebiten.StandardGamepadButtonLeftBottom, code: rawinput.KeyCodeDown},
	{button: ebiten.StandardGamepadButtonLeftLeft, code: rawinput.KeyCodeLeft},
	{button: ebiten.StandardGamepadButtonLeftRight, code: rawinput.KeyCodeRight},
	{button: ebiten.StandardGamepadButtonRightBottom, code: rawinput.KeyCodeSpace},
}

// Poller collects the key transitions of the current frame.
type Poller struct {
	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func NewPoller() *Poller {
	return &Poller{}
}

// AppendKeyEvents appends this frame's presses followed by its releases.
// Keys without a raw code are skipped.
func (p *Poller) AppendKeyEvents(events []types.InputEvent) []types.InputEvent {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyCodes[k]; ok {
			events = append(events, types.InputEvent{RawCode: code, Pressed: true})
		}
	}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, gc := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, gc.button) {
				events = append(events, types.InputEvent{RawCode: gc.code, Pressed: true})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, gc.button) {
				events = append(events, types.InputEvent{RawCode: gc.code, Pressed: false})
			}
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyCodes[k]; ok {
			events = append(events, types.InputEvent{RawCode: code, Pressed: false})
		}
	}

	return events
}

// PointerJustPressed returns the screen position of a mouse click or touch
// that started this frame.
func (p *Poller) PointerJustPressed() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(p.touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// IsDebugJustPressed reports whether the debug overlay toggle was pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
