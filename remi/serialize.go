package remi

import (
	"encoding/json"
	"fmt"
)

// SerializeAction marshals an Action to its wire form. Errors are
// swallowed: every concrete Action type here is a plain struct of
// JSON-tagged fields, so marshaling cannot fail in practice.
func SerializeAction(a Action) []byte {
	bs, _ := json.Marshal(a)
	return bs
}

// DeserializeAction reverses SerializeAction, dispatching on the "name"
// discriminator embedded in the envelope.
func DeserializeAction(bs []byte) (Action, error) {
	var envelope struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(bs, &envelope); err != nil {
		return nil, err
	}

	var a Action
	switch envelope.Name {
	case ActionNameDrawFromDeck:
		a = &ActionDrawFromDeck{}
	case ActionNameDrawFromDiscard:
		a = &ActionDrawFromDiscard{}
	case ActionNameTakeFinishing:
		a = &ActionTakeFinishingCard{}
	case ActionNameLayMelds:
		a = &ActionLayMelds{}
	case ActionNameAddToMeld:
		a = &ActionAddToMeld{}
	case ActionNameSkipMeld:
		a = &ActionSkipMeld{}
	case ActionNameDiscard:
		a = &ActionDiscard{}
	default:
		return nil, fmt.Errorf("unknown action: %q", envelope.Name)
	}

	if err := json.Unmarshal(bs, a); err != nil {
		return nil, err
	}
	return a, nil
}
