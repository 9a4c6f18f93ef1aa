package session

import (
	"errors"
	"fmt"
)

// State is one stage of the upload-or-manual-entry onboarding flow.
type State string

const (
	StateInit           State = "init"
	StateAwaitingChoice State = "awaiting_choice"
	StateAwaitingUpload State = "awaiting_upload"
	StateProcessing     State = "processing"
	StateAwaitingManual State = "awaiting_manual_input"
	StateShowingResult  State = "showing_result"
)

// Event is an input to the flow.
type Event string

const (
	EventStart            Event = "start"
	EventChooseUpload     Event = "choose_upload"
	EventChooseManual     Event = "choose_manual"
	EventDocumentReceived Event = "document_received"
	EventFieldsEntered    Event = "fields_entered"
	EventResultReady      Event = "result_ready"
	EventRestart          Event = "restart"
)

// Action is the side effect the caller should perform after a transition.
// The machine itself performs none; it is pure and UI-agnostic.
type Action string

const (
	ActionPromptChoice Action = "prompt_choice"
	ActionPromptUpload Action = "prompt_upload"
	ActionPromptFields Action = "prompt_fields"
	ActionProcessInput Action = "process_input"
	ActionShowResult   Action = "show_result"
)

// ErrInvalidTransition is returned for an event the current state does not
// accept.
var ErrInvalidTransition = errors.New("invalid session transition")

type transition struct {
	next State
	act  Action
}

var transitions = map[State]map[Event]transition{
	StateInit: {
		EventStart: {StateAwaitingChoice, ActionPromptChoice},
	},
	StateAwaitingChoice: {
		EventChooseUpload: {StateAwaitingUpload, ActionPromptUpload},
		EventChooseManual: {StateAwaitingManual, ActionPromptFields},
	},
	StateAwaitingUpload: {
		EventDocumentReceived: {StateProcessing, ActionProcessInput},
	},
	StateAwaitingManual: {
		EventFieldsEntered: {StateProcessing, ActionProcessInput},
	},
	StateProcessing: {
		EventResultReady: {StateShowingResult, ActionShowResult},
	},
	StateShowingResult: {
		EventRestart: {StateAwaitingChoice, ActionPromptChoice},
	},
}

// Transition maps the current state and an event to the next state and the
// action the caller should perform. On an invalid event the state is returned
// unchanged alongside ErrInvalidTransition.
func Transition(s State, e Event) (State, Action, error) {
	if m, ok := transitions[s]; ok {
		if t, ok := m[e]; ok {
			return t.next, t.act, nil
		}
	}
	return s, "", fmt.Errorf("%w: %q in state %q", ErrInvalidTransition, e, s)
}
