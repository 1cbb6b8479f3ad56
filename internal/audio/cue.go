// Package audio plays short transition cues. The host terminal may have
// no audio path at all; every failure here is silent and affects nothing
// else.
package audio

import (
	"fmt"
	"io"
	"os"
)

// Player plays a named cue. Implementations return an error when the
// backend is unavailable; callers ignore it.
type Player interface {
	Play(cue string) error
}

// BellPlayer renders cues as the terminal bell.
type BellPlayer struct {
	out io.Writer
}

// NewBellPlayer creates a bell player writing to w (stderr if nil, so
// cues don't interleave with the rendered UI on stdout).
func NewBellPlayer(w io.Writer) *BellPlayer {
	if w == nil {
		w = os.Stderr
	}
	return &BellPlayer{out: w}
}

// Play emits a single BEL for any cue name.
func (p *BellPlayer) Play(string) error {
	if p.out == nil {
		return fmt.Errorf("no output for bell")
	}
	_, err := p.out.Write([]byte{0x07})
	return err
}

// NopPlayer silently does nothing. Used when audio is disabled.
type NopPlayer struct{}

func (NopPlayer) Play(string) error { return nil }

// New returns a bell player when enabled, a no-op player otherwise.
func New(enabled bool) Player {
	if enabled {
		return NewBellPlayer(nil)
	}
	return NopPlayer{}
}
