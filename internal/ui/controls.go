package ui

import (
	"image"
	"strconv"

	"zing/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	statLineHeight = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// statLine is one read-only row of the statistics section.
type statLine struct {
	label string
	value string
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// refreshControls copies current values out of the snapshot.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok || state.control.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

// adjustTarget returns the value one step in direction and whether it
// differs from the current value once bounds are applied.
func adjustTarget(state controlState, direction int) (int, bool) {
	if !state.hasValue || direction == 0 {
		return state.intValue, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	return target, target != state.intValue
}

// applyAdjustment pushes a one-step change through setter.
func applyAdjustment(state *controlState, direction int, setter core.IntParameterSetter) bool {
	if setter == nil {
		return false
	}
	target, ok := adjustTarget(*state, direction)
	if !ok {
		return false
	}
	if !setter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

// hitControl finds the control button under (x, y), returning the control
// index and direction.
func hitControl(states []controlState, x, y int) (int, int, bool) {
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// statLines flattens the non-adjustable groups named in groups.
func statLines(snap core.ParameterSnapshot, groups ...string) []statLine {
	var out []statLine
	for _, name := range groups {
		for _, group := range snap.Groups {
			if group.Name != name {
				continue
			}
			for _, p := range group.Params {
				out = append(out, statLine{label: p.Label, value: p.Value})
			}
			if group.Summary != "" {
				out = append(out, statLine{label: group.Name, value: group.Summary})
			}
		}
	}
	return out
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
