package game

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/utils"
)

// Status is whether the ticker advances the board
type Status uint8

const (
	Paused Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return utils.StatusRunning
	}
	return utils.StatusPaused
}

// ParseStatus parses "paused" or "running"
func ParseStatus(s string) (Status, error) {
	switch s {
	case utils.StatusPaused:
		return Paused, nil
	case utils.StatusRunning:
		return Running, nil
	}
	return Paused, errors.Errorf("[ParseStatus] unknown status %q", s)
}
