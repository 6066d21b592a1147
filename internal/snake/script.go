package snake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidScript is returned for malformed input scripts.
var ErrInvalidScript = errors.New("snake: invalid script")

// Script is a scripted input sequence keyed by tick number (1-based).
// Several actions may share a tick; they are delivered in script order.
type Script map[uint64][]core.Action

// ParseScript reads a comma-separated list of "tick:action" entries, e.g.
// "4:down,10:left,30:quit". Actions are up, down, left, right and quit.
// An empty string yields an empty script.
func ParseScript(s string) (Script, error) {
	script := make(Script)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tickStr, name, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q is not tick:action", ErrInvalidScript, entry)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("%w: bad tick in %q", ErrInvalidScript, entry)
		}

		action, err := parseAction(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
		script[tick] = append(script[tick], action)
	}
	return script, nil
}

func parseAction(name string) (core.Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "quit" || name == "q" {
		return core.ActionQuit, nil
	}
	d, err := ParseDirection(name)
	if err != nil {
		return core.ActionNone, err
	}
	return d.action(), nil
}

// Frame builds the input frame for the given tick.
func (s Script) Frame(tick uint64) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range s[tick] {
		frame.Set(a)
	}
	return frame
}
