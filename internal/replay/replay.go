// Package replay drives a polyplay session from a line-based input script,
// so interactions can be reproduced without a window.
//
// Script format, one command per line, '#' starts a comment:
//
//	draw | pan | idle          switch interaction mode
//	wheel on|off               enable or disable wheel zoom
//	down X Y / move X Y / up X Y   pointer events in screen space
//	scroll DY X Y              wheel event
//	zoomin | zoomout           zoom buttons
//	place X Y                  place a point in scene space
//	clear | reset              clear the sketch / reset the view
//	resize W H                 resize the surface
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/polyplay"
)

var (
	// ErrUnknownCommand is returned for an unrecognised command word.
	ErrUnknownCommand = errors.New("replay: unknown command")

	// ErrBadArgs is returned when a command has the wrong arguments.
	ErrBadArgs = errors.New("replay: bad arguments")
)

// Op is a script command.
type Op string

// Script commands.
const (
	OpDraw    Op = "draw"
	OpPan     Op = "pan"
	OpIdle    Op = "idle"
	OpWheel   Op = "wheel"
	OpDown    Op = "down"
	OpMove    Op = "move"
	OpUp      Op = "up"
	OpScroll  Op = "scroll"
	OpZoomIn  Op = "zoomin"
	OpZoomOut Op = "zoomout"
	OpPlace   Op = "place"
	OpClear   Op = "clear"
	OpReset   Op = "reset"
	OpResize  Op = "resize"
)

// arity is the number of numeric arguments per command. OpWheel takes a
// single on/off word instead.
var arity = map[Op]int{
	OpDraw:    0,
	OpPan:     0,
	OpIdle:    0,
	OpDown:    2,
	OpMove:    2,
	OpUp:      2,
	OpScroll:  3,
	OpZoomIn:  0,
	OpZoomOut: 0,
	OpPlace:   2,
	OpClear:   0,
	OpReset:   0,
	OpResize:  2,
}

// Step is one parsed command.
type Step struct {
	Line int
	Op   Op
	Args []float64
	On   bool // OpWheel only
}

// Parse reads a script. Errors name the offending line.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		st, err := parseStep(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		st.Line = line
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read script: %w", err)
	}
	return steps, nil
}

func parseStep(fields []string) (Step, error) {
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]

	if op == OpWheel {
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%w: wheel wants on|off", ErrBadArgs)
		}
		switch strings.ToLower(args[0]) {
		case "on":
			return Step{Op: op, On: true}, nil
		case "off":
			return Step{Op: op}, nil
		}
		return Step{}, fmt.Errorf("%w: wheel %q", ErrBadArgs, args[0])
	}

	n, ok := arity[op]
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if len(args) != n {
		return Step{}, fmt.Errorf("%w: %s wants %d numbers, got %d", ErrBadArgs, op, n, len(args))
	}
	st := Step{Op: op, Args: make([]float64, n)}
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return Step{}, fmt.Errorf("%w: %s: %q is not a number", ErrBadArgs, op, a)
		}
		st.Args[i] = v
	}
	return st, nil
}

// Run applies steps to s in order.
func Run(s *polyplay.Session, steps []Step) {
	log := polyplay.Logger()
	for _, st := range steps {
		log.Debug("replay: step", "line", st.Line, "op", string(st.Op))
		apply(s, st)
	}
}

func apply(s *polyplay.Session, st Step) {
	a := st.Args
	switch st.Op {
	case OpDraw:
		s.EnableDraw()
	case OpPan:
		s.EnablePan()
	case OpIdle:
		s.DisableDraw()
		s.DisablePan()
	case OpWheel:
		if st.On {
			s.EnableWheelZoom()
		} else {
			s.DisableWheelZoom()
		}
	case OpDown:
		s.PointerDown(polyplay.PointerEvent{X: a[0], Y: a[1]})
	case OpMove:
		s.PointerMove(polyplay.PointerEvent{X: a[0], Y: a[1]})
	case OpUp:
		s.PointerUp(polyplay.PointerEvent{X: a[0], Y: a[1]})
	case OpScroll:
		s.Wheel(polyplay.WheelEvent{DeltaY: a[0], X: a[1], Y: a[2]})
	case OpZoomIn:
		s.ZoomIn()
	case OpZoomOut:
		s.ZoomOut()
	case OpPlace:
		s.PlacePoint(polyplay.Pt(a[0], a[1]))
	case OpClear:
		s.Clear()
	case OpReset:
		s.ResetView()
	case OpResize:
		s.Resize(int(a[0]), int(a[1]))
	}
}
