package dialogue

import (
	"fmt"

	"neobook/models"
)

// ActionType classifies what the assistant should do next for a booking in
// progress.
type ActionType int

const (
	// ActionAsk requests the first missing required field.
	ActionAsk ActionType = iota
	// ActionConfirm presents the summary and asks for a yes/no.
	ActionConfirm
	// ActionCommit signals the slot set is complete and confirmed.
	ActionCommit
)

// Action is the decision for the current turn. Prompt is the user-facing text
// for Ask and Confirm; Field names the missing slot for Ask.
type Action struct {
	Type   ActionType
	Field  string
	Prompt string
}

// NextAction is a deterministic state machine over slot completeness. It has
// no state beyond the SlotSet itself, so it is safe to re-evaluate every turn:
//
//   - first missing required field, in fixed priority order -> Ask
//   - all six present, not confirmed -> Confirm with rendered summary
//   - all six present and confirmed -> Commit
func NextAction(slots *models.SlotSet) Action {
	if field := slots.FirstMissing(); field != "" {
		return Action{
			Type:   ActionAsk,
			Field:  field,
			Prompt: fmt.Sprintf("Please provide your %s.", field),
		}
	}

	if !slots.Confirmed {
		return Action{
			Type:   ActionConfirm,
			Prompt: fmt.Sprintf("%s\n\nDo you confirm this booking? (Yes/No)", slots.Summary()),
		}
	}

	return Action{Type: ActionCommit}
}
