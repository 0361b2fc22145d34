package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Operation names a script-to-native call.
type Operation string

const (
	OpSaveImage Operation = "saveImage"
	OpShowToast Operation = "showToast"
	OpLog       Operation = "log"
)

// Operations lists every operation the bridge accepts.
func Operations() []Operation {
	return []Operation{OpSaveImage, OpShowToast, OpLog}
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	switch op {
	case OpSaveImage, OpShowToast, OpLog:
		return true
	default:
		return false
	}
}

// ErrUnknownOperation is returned by Dispatch for unrecognized message types.
var ErrUnknownOperation = errors.New("unknown bridge operation")

// Message represents a JS -> Go message envelope sent via postMessage.
type Message struct {
	Type    Operation `json:"type"`
	Payload string    `json:"payload"`
}

// ParseMessage decodes a JSON envelope. The payload must be a JSON string;
// a missing payload is treated as empty.
func ParseMessage(raw []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, fmt.Errorf("decode bridge message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, errors.New("bridge message has no type")
	}
	return msg, nil
}
