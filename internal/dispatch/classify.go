package dispatch

import "unicode"

// Action is the outcome of classifying an incoming text message.
type Action int

const (
	// ActionDefault replies with the greeting.
	ActionDefault Action = iota
	// ActionRegister stores the message as a tracking number.
	ActionRegister
	// ActionPrompt asks the user to send a tracking number.
	ActionPrompt
	// ActionStatus replies with the latest status photo.
	ActionStatus
)

const (
	// KeywordTrackingNumber means "tracking number".
	KeywordTrackingNumber = "追跡番号"
	// KeywordStatus means "status".
	KeywordStatus = "状態"
)

func (a Action) String() string {
	switch a {
	case ActionRegister:
		return "register"
	case ActionPrompt:
		return "prompt"
	case ActionStatus:
		return "status"
	default:
		return "default"
	}
}

// Classify maps message text to an Action. Rules are checked in order:
// all decimal digits, the tracking number keyword, the status keyword.
// Anything else is ActionDefault.
func Classify(text string) Action {
	switch {
	case isDecimal(text):
		return ActionRegister
	case text == KeywordTrackingNumber:
		return ActionPrompt
	case text == KeywordStatus:
		return ActionStatus
	default:
		return ActionDefault
	}
}

// isDecimal reports whether text is non-empty and made only of Unicode decimal digits.
func isDecimal(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.Is(unicode.Nd, r) {
			return false
		}
	}
	return true
}
