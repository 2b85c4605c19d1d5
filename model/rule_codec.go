package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// RuleList is an ordered list of fragments with a polymorphic wire format:
// each element is an object keyed by its `type` discriminant.
type RuleList []Rule

type ruleDecoder func(decode func(any) error) (Rule, error)

func decoderFor[T Rule]() ruleDecoder {
	return func(decode func(any) error) (Rule, error) {
		var r T
		if err := decode(&r); err != nil {
			return nil, err
		}
		return r, nil
	}
}

var ruleDecoders = map[RuleKind]ruleDecoder{
	KindSetJobMode:            decoderFor[SetJobMode](),
	KindSetJobContacts:        decoderFor[SetJobContacts](),
	KindAllowContacts:         decoderFor[AllowContacts](),
	KindForbidContact:         decoderFor[ForbidContact](),
	KindPrimeContacts:         decoderFor[PrimeContacts](),
	KindSetJobStepContent:     decoderFor[SetJobStepContent](),
	KindSetNavMode:            decoderFor[SetNavMode](),
	KindSetPrimeMode:          decoderFor[SetPrimeMode](),
	KindModifyPrime:           decoderFor[ModifyPrime](),
	KindSetDraftMode:          decoderFor[SetDraftMode](),
	KindSetLeaderSetup:        decoderFor[SetLeaderSetup](),
	KindBypassDraft:           decoderFor[BypassDraft](),
	KindSetPlayerBadges:       decoderFor[SetPlayerBadges](),
	KindSetAllianceMode:       decoderFor[SetAllianceMode](),
	KindSetAlliancePlacement:  decoderFor[SetAlliancePlacement](),
	KindCreateAlertTokenStack: decoderFor[CreateAlertTokenStack](),
	KindAddBoardComponent:     decoderFor[AddBoardComponent](),
	KindSetShipPlacement:      decoderFor[SetShipPlacement](),
	KindModifyResource:        decoderFor[ModifyResource](),
	KindAddFlag:               decoderFor[AddFlag](),
	KindAddSpecialRule:        decoderFor[AddSpecialRule](),
	KindSetComponent:          decoderFor[SetComponent](),
}

// RuleKinds returns every kind this build can decode, sorted.
func RuleKinds() []RuleKind {
	kinds := make([]RuleKind, 0, len(ruleDecoders))
	for k := range ruleDecoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// KnownKind reports whether k is a fragment type this build understands.
func KnownKind(k RuleKind) bool {
	_, ok := ruleDecoders[k]
	return ok
}

type ruleHeader struct {
	Type string `json:"type" yaml:"type"`
}

// DecodeRuleJSON decodes one fragment. Unrecognized types decode into an
// UnknownRule that keeps the raw payload, so newer catalogs don't break
// older readers.
func DecodeRuleJSON(data []byte) (Rule, error) {
	var h ruleHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode rule header: %w", err)
	}
	dec, ok := ruleDecoders[RuleKind(h.Type)]
	if !ok {
		var p Provenance
		_ = json.Unmarshal(data, &p)
		return UnknownRule{Provenance: p, Type: h.Type, Raw: append([]byte(nil), data...)}, nil
	}
	r, err := dec(func(v any) error { return json.Unmarshal(data, v) })
	if err != nil {
		return nil, fmt.Errorf("decode rule %q: %w", h.Type, err)
	}
	return r, nil
}

// MarshalRule encodes one fragment with its type discriminant first.
func MarshalRule(r Rule) ([]byte, error) {
	if u, ok := r.(UnknownRule); ok && len(u.Raw) > 0 {
		return u.Raw, nil
	}
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal rule %q: %w", r.Kind(), err)
	}
	kind, err := json.Marshal(r.Kind())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(kind)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func (l RuleList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := MarshalRule(r)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (l *RuleList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("decode rule list: %w", err)
	}
	if raws == nil {
		*l = nil
		return nil
	}
	out := make(RuleList, 0, len(raws))
	for i, raw := range raws {
		r, err := DecodeRuleJSON(raw)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, r)
	}
	*l = out
	return nil
}

func (l *RuleList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: rules must be a sequence", value.Line)
	}
	out := make(RuleList, 0, len(value.Content))
	for _, item := range value.Content {
		var h ruleHeader
		if err := item.Decode(&h); err != nil {
			return fmt.Errorf("line %d: decode rule header: %w", item.Line, err)
		}
		dec, ok := ruleDecoders[RuleKind(h.Type)]
		if !ok {
			var p Provenance
			_ = item.Decode(&p)
			out = append(out, UnknownRule{Provenance: p, Type: h.Type})
			continue
		}
		r, err := dec(item.Decode)
		if err != nil {
			return fmt.Errorf("line %d: decode rule %q: %w", item.Line, h.Type, err)
		}
		out = append(out, r)
	}
	*l = out
	return nil
}
