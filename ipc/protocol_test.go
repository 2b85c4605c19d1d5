package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewEnvelope(TypeShare, ShareMessage{Link: "abc", URL: "https://x/#abc", QR: []byte{0x89, 'P'}})
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteEnvelope(&buf, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if got := binary.LittleEndian.Uint32(buf.Bytes()[:4]); int(got) != buf.Len()-4 {
		t.Errorf("length prefix = %d, payload = %d", got, buf.Len()-4)
	}

	back, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if back.Type != TypeShare {
		t.Errorf("type = %q", back.Type)
	}
	var msg ShareMessage
	if err := json.Unmarshal(back.Data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Link != "abc" || !bytes.Equal(msg.QR, []byte{0x89, 'P'}) {
		t.Errorf("share = %+v", msg)
	}
}

func TestReadEnvelopeRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  string
	}{
		{"zero length", []byte{0, 0, 0, 0}, "invalid message length"},
		{"too large", binary.LittleEndian.AppendUint32(nil, MaxFrame+1), "invalid message length"},
		{"truncated", append(binary.LittleEndian.AppendUint32(nil, 10), "{}"...), "read payload"},
		{"not json", append(binary.LittleEndian.AppendUint32(nil, 3), "abc"...), "unmarshal envelope"},
		{"short prefix", []byte{1, 0}, "read length"},
	}
	for _, tt := range tests {
		_, err := ReadEnvelope(bytes.NewReader(tt.frame))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want %q", tt.name, err, tt.want)
		}
	}
}

func TestReadLoop(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	c := NewConnection(server, nil)
	c.RegisterHandler(TypeHello, func(env Envelope) (*Envelope, error) {
		reply, err := NewEnvelope(TypePlan, map[string]string{"session": "s1"})
		return &reply, err
	})
	c.RegisterHandler(TypeDispatch, func(env Envelope) (*Envelope, error) {
		return nil, errBoom
	})
	done := make(chan struct{})
	go func() {
		c.ReadLoop()
		close(done)
	}()

	roundTrip := func(msgType string) Envelope {
		t.Helper()
		if err := WriteEnvelope(client, Envelope{Type: msgType}); err != nil {
			t.Fatalf("write %s: %v", msgType, err)
		}
		env, err := ReadEnvelope(client)
		if err != nil {
			t.Fatalf("read reply to %s: %v", msgType, err)
		}
		return env
	}

	if got := roundTrip(TypeHello); got.Type != TypePlan {
		t.Errorf("hello reply = %q, want plan", got.Type)
	}
	got := roundTrip(TypeDispatch)
	var msg ErrorMessage
	if err := json.Unmarshal(got.Data, &msg); err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeError || msg.Request != TypeDispatch || msg.Message != errBoom.Error() {
		t.Errorf("dispatch reply = %s %+v", got.Type, msg)
	}
	if got := roundTrip("warp"); got.Type != TypeError {
		t.Errorf("unknown type reply = %q, want error", got.Type)
	}

	client.Close()
	<-done
}

var errBoom = errors.New("boom")
