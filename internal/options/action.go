package options

// Action is the subcommand-specific part of an invocation. The set of
// implementations is closed; use Match to consume one.
type Action interface {
	accept(ActionHandler)
}

// ActionHandler receives exactly one callback per Match. Every consumer of
// Action implements all methods, so a new variant cannot be silently ignored.
type ActionHandler interface {
	NoAction()
	SceneDetect(SceneDetect)
	SplitByTime(SplitByTime)
}

// NoAction runs the backend with only the shared input/output arguments.
type NoAction struct{}

// SceneDetect drives the scene detector.
type SceneDetect struct {
	DetectContent bool
	ListScenes    bool
	SplitVideo    bool
}

// SplitByTime extracts frames from the input starting at StartTime.
type SplitByTime struct {
	StartTime    string
	VideoQuality uint8
	OutputFormat string
	VideoFrame   uint8
	OutputSuffix string
	WidthScale   int8
	HeightScale  int8
}

func (NoAction) accept(h ActionHandler)      { h.NoAction() }
func (a SceneDetect) accept(h ActionHandler) { h.SceneDetect(a) }
func (a SplitByTime) accept(h ActionHandler) { h.SplitByTime(a) }

// Match dispatches action to the handler method for its variant. A nil
// action is treated as NoAction.
func Match(action Action, h ActionHandler) {
	if action == nil {
		h.NoAction()
		return
	}
	action.accept(h)
}

// ActionName returns the subcommand name for an action, or "none".
func ActionName(action Action) string {
	var n actionNamer
	Match(action, &n)
	return n.name
}

type actionNamer struct{ name string }

func (n *actionNamer) NoAction()               { n.name = "none" }
func (n *actionNamer) SceneDetect(SceneDetect) { n.name = "scene-detect" }
func (n *actionNamer) SplitByTime(SplitByTime) { n.name = "split-by-time" }
