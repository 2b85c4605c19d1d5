// Package wizard owns the game-state transitions of the setup wizard: one
// reducer per concern, a dispatcher that always finishes with the
// validation guard, persistence and share links, and a Session that holds
// the current snapshot.
package wizard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nstehr/shiny/model"
)

// ErrUnknownAction is returned for an action type with no reducer.
var ErrUnknownAction = errors.New("unknown action")

// Action type strings, as sent by the front end.
const (
	TypeSetPlayerCount  = "setPlayerCount"
	TypeSetPlayerName   = "setPlayerName"
	TypeToggleExpansion = "toggleExpansion"
	TypeSetSetupMode    = "setSetupMode"
	TypeSetCampaign     = "setCampaign"

	TypeSelectSetupCard     = "selectSetupCard"
	TypeSelectSecondaryCard = "selectSecondaryCard"
	TypeSelectStory         = "selectStory"
	TypeSelectGoal          = "selectGoal"
	TypeToggleChallenge     = "toggleChallenge"
	TypeReset               = "reset"

	TypeToggleOptionalRule   = "toggleOptionalRule"
	TypeToggleSoloOption     = "toggleSoloOption"
	TypeSetTimerMode         = "setTimerMode"
	TypeSetDisgruntledDie    = "setDisgruntledDie"
	TypeSetManualConflicts   = "setManualConflicts"
	TypeSelectConflictWinner = "selectConflictWinner"
	TypeSetFinalCredits      = "setFinalCredits"
	TypeSetDraft             = "setDraft"

	TypeAcknowledgeOverride = "acknowledgeOverride"
	TypeClearOverrides      = "clearOverrides"
)

// Action is one state transition request.
type Action interface {
	ActionType() string
}

// Concern markers route an action to its reducer.
type (
	configAction  interface{ config() }
	setupAction   interface{ setup() }
	optionsAction interface{ options() }
	uiAction      interface{ ui() }
)

type SetPlayerCount struct {
	Count int `json:"count"`
}

type SetPlayerName struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type ToggleExpansion struct {
	ID string `json:"id"`
}

type SetSetupMode struct {
	Mode model.SetupMode `json:"mode"`
}

type SetCampaign struct {
	Campaign model.Campaign `json:"campaign"`
}

type SelectSetupCard struct {
	ID string `json:"id"`
}

type SelectSecondaryCard struct {
	ID string `json:"id"`
}

type SelectStory struct {
	Index int `json:"index"`
}

type SelectGoal struct {
	Title string `json:"title"`
}

type ToggleChallenge struct {
	ID string `json:"id"`
}

// Reset replaces the whole state with catalog defaults.
type Reset struct{}

type ToggleOptionalRule struct {
	Key string `json:"key"`
}

type ToggleSoloOption struct {
	Key string `json:"key"`
}

type SetTimerMode struct {
	Mode model.TimerMode `json:"mode"`
}

type SetDisgruntledDie struct {
	Mode model.DieMode `json:"mode"`
}

type SetManualConflicts struct {
	Enabled bool `json:"enabled"`
}

// SelectConflictWinner records the user's pick for one conflicting field.
type SelectConflictWinner struct {
	Field  string           `json:"field"`
	Source model.RuleSource `json:"source"`
}

type SetFinalCredits struct {
	Amount int `json:"amount"`
}

type SetDraft struct {
	Draft model.DraftState `json:"draft"`
}

type AcknowledgeOverride struct {
	StepID string `json:"stepId"`
}

type ClearOverrides struct{}

func (SetPlayerCount) ActionType() string       { return TypeSetPlayerCount }
func (SetPlayerName) ActionType() string        { return TypeSetPlayerName }
func (ToggleExpansion) ActionType() string      { return TypeToggleExpansion }
func (SetSetupMode) ActionType() string         { return TypeSetSetupMode }
func (SetCampaign) ActionType() string          { return TypeSetCampaign }
func (SelectSetupCard) ActionType() string      { return TypeSelectSetupCard }
func (SelectSecondaryCard) ActionType() string  { return TypeSelectSecondaryCard }
func (SelectStory) ActionType() string          { return TypeSelectStory }
func (SelectGoal) ActionType() string           { return TypeSelectGoal }
func (ToggleChallenge) ActionType() string      { return TypeToggleChallenge }
func (Reset) ActionType() string                { return TypeReset }
func (ToggleOptionalRule) ActionType() string   { return TypeToggleOptionalRule }
func (ToggleSoloOption) ActionType() string     { return TypeToggleSoloOption }
func (SetTimerMode) ActionType() string         { return TypeSetTimerMode }
func (SetDisgruntledDie) ActionType() string    { return TypeSetDisgruntledDie }
func (SetManualConflicts) ActionType() string   { return TypeSetManualConflicts }
func (SelectConflictWinner) ActionType() string { return TypeSelectConflictWinner }
func (SetFinalCredits) ActionType() string      { return TypeSetFinalCredits }
func (SetDraft) ActionType() string             { return TypeSetDraft }
func (AcknowledgeOverride) ActionType() string  { return TypeAcknowledgeOverride }
func (ClearOverrides) ActionType() string       { return TypeClearOverrides }

func (SetPlayerCount) config()  {}
func (SetPlayerName) config()   {}
func (ToggleExpansion) config() {}
func (SetSetupMode) config()    {}
func (SetCampaign) config()     {}

func (SelectSetupCard) setup()     {}
func (SelectSecondaryCard) setup() {}
func (SelectStory) setup()         {}
func (SelectGoal) setup()          {}
func (ToggleChallenge) setup()     {}
func (Reset) setup()               {}

func (ToggleOptionalRule) options()   {}
func (ToggleSoloOption) options()     {}
func (SetTimerMode) options()         {}
func (SetDisgruntledDie) options()    {}
func (SetManualConflicts) options()   {}
func (SelectConflictWinner) options() {}
func (SetFinalCredits) options()      {}
func (SetDraft) options()             {}

func (AcknowledgeOverride) ui() {}
func (ClearOverrides) ui()      {}

func decodeAs[T Action](data []byte) (Action, error) {
	var a T
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

var actionDecoders = map[string]func([]byte) (Action, error){
	TypeSetPlayerCount:       decodeAs[SetPlayerCount],
	TypeSetPlayerName:        decodeAs[SetPlayerName],
	TypeToggleExpansion:      decodeAs[ToggleExpansion],
	TypeSetSetupMode:         decodeAs[SetSetupMode],
	TypeSetCampaign:          decodeAs[SetCampaign],
	TypeSelectSetupCard:      decodeAs[SelectSetupCard],
	TypeSelectSecondaryCard:  decodeAs[SelectSecondaryCard],
	TypeSelectStory:          decodeAs[SelectStory],
	TypeSelectGoal:           decodeAs[SelectGoal],
	TypeToggleChallenge:      decodeAs[ToggleChallenge],
	TypeReset:                decodeAs[Reset],
	TypeToggleOptionalRule:   decodeAs[ToggleOptionalRule],
	TypeToggleSoloOption:     decodeAs[ToggleSoloOption],
	TypeSetTimerMode:         decodeAs[SetTimerMode],
	TypeSetDisgruntledDie:    decodeAs[SetDisgruntledDie],
	TypeSetManualConflicts:   decodeAs[SetManualConflicts],
	TypeSelectConflictWinner: decodeAs[SelectConflictWinner],
	TypeSetFinalCredits:      decodeAs[SetFinalCredits],
	TypeSetDraft:             decodeAs[SetDraft],
	TypeAcknowledgeOverride:  decodeAs[AcknowledgeOverride],
	TypeClearOverrides:       decodeAs[ClearOverrides],
}

// DecodeAction decodes a flat `{"type": ..., fields...}` action object.
func DecodeAction(data []byte) (Action, error) {
	var h struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	dec, ok := actionDecoders[h.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, h.Type)
	}
	a, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("decode action %q: %w", h.Type, err)
	}
	return a, nil
}

// EncodeAction is the inverse of DecodeAction.
func EncodeAction(a Action) ([]byte, error) {
	body, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal action %q: %w", a.ActionType(), err)
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	kind, _ := json.Marshal(a.ActionType())
	buf.Write(kind)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}
