package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// inputStep is one entry of a sim input script: Hold is down on every tick
// of the step, Press and Digit only on its first tick.
//
//	- ticks: 1
//	  press: [confirm]
//	- ticks: 90
//	  hold: [right]
//	- ticks: 20
//	  hold: [right, jump]
type inputStep struct {
	Ticks int      `yaml:"ticks"`
	Hold  []string `yaml:"hold,omitempty"`
	Press []string `yaml:"press,omitempty"`
	Digit int      `yaml:"digit,omitempty"`

	hold  []core.Action
	press []core.Action
}

// inputScript replays a parsed script one frame at a time.
type inputScript struct {
	steps []inputStep
	step  int
	tick  int // Tick within the current step
}

// parseInputScript reads a YAML input script.
func parseInputScript(data []byte) (*inputScript, error) {
	var steps []inputStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing input script: %w", err)
	}

	for i := range steps {
		s := &steps[i]
		if s.Ticks <= 0 {
			return nil, fmt.Errorf("input step %d: ticks must be positive", i+1)
		}
		if s.Digit < 0 || s.Digit > 9 {
			return nil, fmt.Errorf("input step %d: digit %d out of range", i+1, s.Digit)
		}
		var err error
		if s.hold, err = parseActions(s.Hold); err != nil {
			return nil, fmt.Errorf("input step %d: %w", i+1, err)
		}
		if s.press, err = parseActions(s.Press); err != nil {
			return nil, fmt.Errorf("input step %d: %w", i+1, err)
		}
	}
	return &inputScript{steps: steps}, nil
}

func parseActions(names []string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(names))
	for _, name := range names {
		a, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Len returns the number of ticks the script covers.
func (s *inputScript) Len() int {
	n := 0
	for _, step := range s.steps {
		n += step.Ticks
	}
	return n
}

// Next returns the input for the next tick. An exhausted script idles.
func (s *inputScript) Next() core.InputFrame {
	in := core.NewInputFrame()
	if s.step >= len(s.steps) {
		return in
	}

	step := s.steps[s.step]
	for _, a := range step.hold {
		in.Set(a)
	}
	if s.tick == 0 {
		for _, a := range step.press {
			in.Set(a)
		}
		in.Digit = step.Digit
	}

	s.tick++
	if s.tick >= step.Ticks {
		s.step++
		s.tick = 0
	}
	return in
}
