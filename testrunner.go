package wavemenu

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"open": true, "close": true, "toggle": true,
	"resize": true, "wait": true, "screenshot": true,
}

// ScriptRunner sequences menu toggles, resizes and screenshots across
// frames for automated visual checks. Attach to a Host via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Host via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "resize" && (st.Width < 0 || st.Height < 0) {
			return nil, fmt.Errorf("parse script: step %d: negative size %dx%d", i, st.Width, st.Height)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the host. The runner's step
// method is called at the start of every Host.Update.
func (h *Host) SetScriptRunner(runner *ScriptRunner) {
	h.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Host.Update.
func (r *ScriptRunner) step(h *Host) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "open":
		err = h.OpenMenu()
	case "close":
		h.CloseMenu()
	case "toggle":
		err = h.Toggle()
	case "resize":
		h.Resize(st.Width, st.Height)
	case "screenshot":
		h.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}
