package component

// InteractionEvent is an event raised by the hover system on an interactable.
type InteractionEvent int

const (
	HoverEnter InteractionEvent = iota + 1
	HoverExit
)

func (e InteractionEvent) String() string {
	switch e {
	case HoverEnter:
		return "hover_enter"
	case HoverExit:
		return "hover_exit"
	default:
		return "unknown"
	}
}

// KeyAction is what a listener asks the tone system to do with its key.
type KeyAction int

const (
	ActionPlay KeyAction = iota + 1
	ActionFadeOut
)

func (a KeyAction) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionFadeOut:
		return "fade_out"
	default:
		return "none"
	}
}

// Listener maps an interaction event to a key action. Listeners are plain
// data; the key index they act on lives on the Key component.
type Listener struct {
	On InteractionEvent
	Do KeyAction
}

// Interactable marks an entity as detectable by the hover system.
type Interactable struct {
	Listeners []Listener
	Hovered   bool
}

// Listen registers do for on. An existing listener for the same event is
// replaced, so binding twice never duplicates callbacks.
func (i *Interactable) Listen(on InteractionEvent, do KeyAction) {
	if i == nil {
		return
	}
	for idx := range i.Listeners {
		if i.Listeners[idx].On == on {
			i.Listeners[idx].Do = do
			return
		}
	}
	i.Listeners = append(i.Listeners, Listener{On: on, Do: do})
}

// Actions returns the actions registered for on, in registration order.
func (i *Interactable) Actions(on InteractionEvent) []KeyAction {
	if i == nil {
		return nil
	}
	var out []KeyAction
	for _, l := range i.Listeners {
		if l.On == on {
			out = append(out, l.Do)
		}
	}
	return out
}

var InteractableComponent = NewComponent[Interactable]()
