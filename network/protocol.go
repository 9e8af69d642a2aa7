package network

import (
	"encoding/json"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/events"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello MessageType = "hello" // Sent once per peer on connect
	MsgFrame MessageType = "frame" // Scene snapshot
	MsgDone  MessageType = "done"  // Scene went idle, last frame of a present
)

// Message is the JSON envelope written to every peer
type Message struct {
	Type MessageType `json:"type"`
	Seq  uint32      `json:"seq"`
	Peer PeerID      `json:"peer,omitempty"`

	Frame *Frame `json:"frame,omitempty"`
}

// Frame is one scene snapshot
type Frame struct {
	ElapsedMs int64        `json:"elapsed_ms"`
	Pending   int          `json:"pending"`
	Idle      bool         `json:"idle"`
	Nodes     []NodeFrame  `json:"nodes"`
	Events    []EventFrame `json:"events,omitempty"`
}

// NodeFrame is the wire form of engine.Node
type NodeFrame struct {
	ID     int            `json:"id"`
	Kind   string         `json:"kind"`
	Object catalog.Object `json:"object"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Alpha  float64        `json:"alpha"`
	Size   float64        `json:"size"`
	Dimmed bool           `json:"dimmed,omitempty"`
	Shield bool           `json:"shield,omitempty"`
}

// EventFrame is the wire form of events.SceneEvent
type EventFrame struct {
	Type    events.EventType `json:"type"`
	AtMs    int64            `json:"at_ms"`
	Payload any              `json:"payload,omitempty"`
}

// NewFrame snapshots lv; evs are the events dispatched since the last frame
func NewFrame(lv *engine.LiveView, evs []events.SceneEvent) *Frame {
	nodes := lv.Nodes()
	f := &Frame{
		ElapsedMs: lv.Elapsed().Milliseconds(),
		Pending:   lv.Pending(),
		Idle:      lv.Idle(),
		Nodes:     make([]NodeFrame, 0, len(nodes)),
	}
	for _, n := range nodes {
		if !n.Visible() {
			continue
		}
		f.Nodes = append(f.Nodes, NodeFrame{
			ID:     n.ID,
			Kind:   n.Kind.String(),
			Object: n.Object,
			X:      n.X,
			Y:      n.DrawY(),
			Alpha:  n.Alpha,
			Size:   n.Size,
			Dimmed: n.Dimmed,
			Shield: n.Shield,
		})
	}
	for _, ev := range evs {
		f.Events = append(f.Events, EventFrame{
			Type:    ev.Type,
			AtMs:    ev.At.Milliseconds(),
			Payload: ev.Payload,
		})
	}
	return f
}

// Encode marshals m for the wire
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a wire message
func Decode(data []byte) (*Message, error) {
	m := &Message{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
