package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NodeKind tags a structured-content node.
type NodeKind string

const (
	NodeText         NodeKind = "text"
	NodeParagraph    NodeKind = "paragraph"
	NodeStrong       NodeKind = "strong"
	NodeAction       NodeKind = "action"
	NodeWarningBox   NodeKind = "warning-box"
	NodeList         NodeKind = "list"
	NodeNumberedList NodeKind = "numbered-list"
	NodeSubList      NodeKind = "sub-list"
	NodeBreak        NodeKind = "br"
	NodePlaceholder  NodeKind = "placeholder"
)

// Node is one element of the rule-text tree handed to the presentation layer.
// A text node encodes as a bare JSON string; every other kind encodes as an
// object tagged by "type".
type Node struct {
	Kind    NodeKind
	Text    string     // text
	Content []Node     // paragraph, strong, action, warning-box
	Items   [][]Node   // list, numbered-list
	Ships   []ShipItem // sub-list
	ID      string     // placeholder
}

type ShipItem struct {
	Ship string `json:"ship" yaml:"ship"`
}

// RuleBlock is a displayable annotation: where it came from, an optional
// title and its content.
type RuleBlock struct {
	Source  RuleSource `json:"source" yaml:"source"`
	Title   string     `json:"title,omitempty" yaml:"title,omitempty"`
	Content []Node     `json:"content" yaml:"content"`
}

func Text(s string) Node            { return Node{Kind: NodeText, Text: s} }
func Paragraph(nodes ...Node) Node  { return Node{Kind: NodeParagraph, Content: nodes} }
func Strong(nodes ...Node) Node     { return Node{Kind: NodeStrong, Content: nodes} }
func Action(nodes ...Node) Node     { return Node{Kind: NodeAction, Content: nodes} }
func WarningBox(nodes ...Node) Node { return Node{Kind: NodeWarningBox, Content: nodes} }
func List(items ...[]Node) Node     { return Node{Kind: NodeList, Items: items} }
func NumberedList(items ...[]Node) Node {
	return Node{Kind: NodeNumberedList, Items: items}
}
func Break() Node                { return Node{Kind: NodeBreak} }
func Placeholder(id string) Node { return Node{Kind: NodePlaceholder, ID: id} }

// SubList builds a ship sub-list.
func SubList(ships ...string) Node {
	items := make([]ShipItem, len(ships))
	for i, s := range ships {
		items[i] = ShipItem{Ship: s}
	}
	return Node{Kind: NodeSubList, Ships: items}
}

// Nodes is shorthand for a node slice, mostly used for list items.
func Nodes(nodes ...Node) []Node { return nodes }

// Para wraps plain strings into one paragraph.
func Para(parts ...string) Node {
	nodes := make([]Node, len(parts))
	for i, p := range parts {
		nodes[i] = Text(p)
	}
	return Paragraph(nodes...)
}

// MapNodes rebuilds the tree bottom-up, passing each node to fn after its
// children have been mapped. The input is never modified.
func MapNodes(nodes []Node, fn func(Node) Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		m := n
		if n.Content != nil {
			m.Content = MapNodes(n.Content, fn)
		}
		if n.Items != nil {
			m.Items = make([][]Node, len(n.Items))
			for j, item := range n.Items {
				m.Items[j] = MapNodes(item, fn)
			}
		}
		if n.Ships != nil {
			m.Ships = append([]ShipItem(nil), n.Ships...)
		}
		out[i] = fn(m)
	}
	return out
}

// ResolvePlaceholders replaces placeholders whose id has a value with text.
// Unknown placeholders stay in place for the presentation layer.
func ResolvePlaceholders(nodes []Node, values map[string]string) []Node {
	return MapNodes(nodes, func(n Node) Node {
		if n.Kind != NodePlaceholder {
			return n
		}
		if v, ok := values[n.ID]; ok {
			return Text(v)
		}
		return n
	})
}

// PlainText flattens a tree into readable text, used for logs and tests.
func PlainText(nodes []Node) string {
	var b strings.Builder
	writePlain(&b, nodes)
	return strings.Join(strings.Fields(b.String()), " ")
}

func writePlain(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n.Kind {
		case NodeText, "":
			b.WriteString(n.Text)
		case NodeBreak:
			b.WriteString(" ")
		case NodePlaceholder:
			b.WriteString("{" + n.ID + "}")
		case NodeSubList:
			for _, s := range n.Ships {
				b.WriteString(" " + s.Ship)
			}
		case NodeList, NodeNumberedList:
			for _, item := range n.Items {
				b.WriteString(" ")
				writePlain(b, item)
			}
		default:
			b.WriteString(" ")
			writePlain(b, n.Content)
			b.WriteString(" ")
		}
	}
}

type nodeWire struct {
	Type    NodeKind `json:"type"`
	Content []Node   `json:"content,omitempty"`
	Items   any      `json:"items,omitempty"`
	ID      string   `json:"id,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case NodeText, "":
		return json.Marshal(n.Text)
	case NodeParagraph, NodeStrong, NodeAction, NodeWarningBox:
		return json.Marshal(struct {
			Type    NodeKind `json:"type"`
			Content []Node   `json:"content"`
		}{n.Kind, n.Content})
	case NodeList, NodeNumberedList:
		return json.Marshal(struct {
			Type  NodeKind `json:"type"`
			Items [][]Node `json:"items"`
		}{n.Kind, n.Items})
	case NodeSubList:
		return json.Marshal(struct {
			Type  NodeKind   `json:"type"`
			Items []ShipItem `json:"items"`
		}{n.Kind, n.Ships})
	case NodeBreak:
		return json.Marshal(nodeWire{Type: n.Kind})
	case NodePlaceholder:
		return json.Marshal(nodeWire{Type: n.Kind, ID: n.ID})
	}
	return nil, fmt.Errorf("marshal content: unknown node kind %q", n.Kind)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Text(s)
		return nil
	}
	var w struct {
		Type    NodeKind        `json:"type"`
		Content []Node          `json:"content"`
		Items   json.RawMessage `json:"items"`
		ID      string          `json:"id"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode content node: %w", err)
	}
	out := Node{Kind: w.Type}
	switch w.Type {
	case NodeParagraph, NodeStrong, NodeAction, NodeWarningBox:
		out.Content = w.Content
	case NodeList, NodeNumberedList:
		if len(w.Items) > 0 {
			if err := json.Unmarshal(w.Items, &out.Items); err != nil {
				return fmt.Errorf("decode %s items: %w", w.Type, err)
			}
		}
	case NodeSubList:
		if len(w.Items) > 0 {
			if err := json.Unmarshal(w.Items, &out.Ships); err != nil {
				return fmt.Errorf("decode sub-list items: %w", err)
			}
		}
	case NodeBreak:
	case NodePlaceholder:
		out.ID = w.ID
	default:
		return fmt.Errorf("decode content node: unknown type %q", w.Type)
	}
	*n = out
	return nil
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*n = Text(value.Value)
		return nil
	}
	var w struct {
		Type    NodeKind  `yaml:"type"`
		Content []Node    `yaml:"content"`
		Items   yaml.Node `yaml:"items"`
		ID      string    `yaml:"id"`
	}
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("line %d: decode content node: %w", value.Line, err)
	}
	out := Node{Kind: w.Type}
	switch w.Type {
	case NodeParagraph, NodeStrong, NodeAction, NodeWarningBox:
		out.Content = w.Content
	case NodeList, NodeNumberedList:
		if w.Items.Kind != 0 {
			if err := w.Items.Decode(&out.Items); err != nil {
				return fmt.Errorf("line %d: decode %s items: %w", value.Line, w.Type, err)
			}
		}
	case NodeSubList:
		if w.Items.Kind != 0 {
			if err := w.Items.Decode(&out.Ships); err != nil {
				return fmt.Errorf("line %d: decode sub-list items: %w", value.Line, err)
			}
		}
	case NodeBreak:
	case NodePlaceholder:
		out.ID = w.ID
	default:
		return fmt.Errorf("line %d: unknown content node type %q", value.Line, w.Type)
	}
	*n = out
	return nil
}
