package arcade

import (
	"github.com/Garsondee/Invaders/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyReader abstracts the keyboard so input decoding can be tested
// without a running window.
type keyReader interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// frameInput is one frame's worth of decoded keyboard input.
type frameInput struct {
	// Held movement, applied before every tick the frame runs.
	held []game.Command
	// One-shot commands, applied before the next tick only.
	once []game.Command

	quit       bool
	pause      bool
	slower     bool
	faster     bool
	restart    bool
	copyReport bool
	autopilot  bool
}

func anyPressed(kr keyReader, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kr.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(kr keyReader, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kr.JustPressed(k) {
			return true
		}
	}
	return false
}

// readInput decodes the keyboard. Opposing direction keys cancel out.
func readInput(kr keyReader) frameInput {
	var in frameInput
	left := anyPressed(kr, ebiten.KeyArrowLeft, ebiten.KeyA)
	right := anyPressed(kr, ebiten.KeyArrowRight, ebiten.KeyD)
	switch {
	case left && !right:
		in.held = append(in.held, game.CommandMoveLeft)
	case right && !left:
		in.held = append(in.held, game.CommandMoveRight)
	}
	if anyJustPressed(kr, ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) {
		in.once = append(in.once, game.CommandFire)
	}

	in.quit = anyJustPressed(kr, ebiten.KeyEscape, ebiten.KeyQ)
	in.pause = kr.JustPressed(ebiten.KeyP)
	in.slower = kr.JustPressed(ebiten.KeyComma)
	in.faster = kr.JustPressed(ebiten.KeyPeriod)
	in.restart = kr.JustPressed(ebiten.KeyR)
	in.copyReport = kr.JustPressed(ebiten.KeyC)
	in.autopilot = kr.JustPressed(ebiten.KeyTab)
	return in
}
