// Package headless drives the host from a line-delimited JSON stream. Each
// input line is an engine event; each output line is a host command. It
// stands in for the browser engine process when no GUI toolkit is present.
package headless

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
)

// EventType names an engine-to-host event.
type EventType string

const (
	EventNavigate           EventType = "navigate"
	EventPermissionRequest  EventType = "permission_request"
	EventPermissionCanceled EventType = "permission_canceled"
	EventScriptMessage      EventType = "script_message"
	EventAssetRequest       EventType = "asset_request"
	EventRetryPermissions   EventType = "retry_permissions"
	EventLoadStarted        EventType = "load_started"
	EventLoadFinished       EventType = "load_finished"
	EventTitleChanged       EventType = "title_changed"
	EventProgressChanged    EventType = "progress_changed"
	EventState              EventType = "state"
)

// CommandType names a host-to-engine command.
type CommandType string

const (
	CommandReady              CommandType = "ready"
	CommandLoad               CommandType = "load"
	CommandNavigation         CommandType = "navigation"
	CommandPermissionResult   CommandType = "permission_result"
	CommandPermissionsMissing CommandType = "permissions_missing"
	CommandToast              CommandType = "toast"
	CommandAssetResponse      CommandType = "asset_response"
	CommandState              CommandType = "state"
	CommandError              CommandType = "error"
)

// Event is one input line.
type Event struct {
	Type      EventType       `json:"type"`
	ID        string          `json:"id,omitempty"`
	URL       string          `json:"url,omitempty"`
	Resources []string        `json:"resources,omitempty"`
	Message   json.RawMessage `json:"message,omitempty"`
	Title     string          `json:"title,omitempty"`
	Progress  float64         `json:"progress,omitempty"`
}

// Command is one output line.
type Command struct {
	Type        CommandType `json:"type"`
	ID          string      `json:"id,omitempty"`
	Session     string      `json:"session,omitempty"`
	Bridge      string      `json:"bridge,omitempty"`
	Operations  []string    `json:"operations,omitempty"`
	URL         string      `json:"url,omitempty"`
	Decision    string      `json:"decision,omitempty"`
	Granted     *bool       `json:"granted,omitempty"`
	Resources   []string    `json:"resources,omitempty"`
	Missing     []string    `json:"missing,omitempty"`
	Text        string      `json:"text,omitempty"`
	Level       string      `json:"level,omitempty"`
	DurationMs  int         `json:"duration_ms,omitempty"`
	Status      int         `json:"status,omitempty"`
	ContentType string      `json:"content_type,omitempty"`
	Data        []byte      `json:"data,omitempty"`
	State       *StateView  `json:"state,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// StateView is the wire form of port.WebViewState.
type StateView struct {
	URI       string  `json:"uri"`
	Title     string  `json:"title"`
	IsLoading bool    `json:"is_loading"`
	Progress  float64 `json:"progress"`
}

func stateView(s port.WebViewState) *StateView {
	return &StateView{URI: s.URI, Title: s.Title, IsLoading: s.IsLoading, Progress: s.Progress}
}

// ParseEvent decodes one input line.
func ParseEvent(line []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Type == "" {
		return Event{}, errors.New("event has no type")
	}
	return ev, nil
}

// ScriptMessage returns the bridge envelope carried by a script_message
// event. Pages usually post a stringified envelope, so a JSON string is
// unwrapped once.
func (ev Event) ScriptMessage() ([]byte, error) {
	raw := strings.TrimSpace(string(ev.Message))
	if raw == "" || raw == "null" {
		return nil, errors.New("script message is empty")
	}
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			return nil, fmt.Errorf("decode script message: %w", err)
		}
		return []byte(inner), nil
	}
	return []byte(raw), nil
}

// Capabilities normalizes the event's resource identifiers. Unknown
// identifiers are kept so the gate can see and deny them.
func (ev Event) Capabilities() []entity.Capability {
	caps := make([]entity.Capability, 0, len(ev.Resources))
	for _, r := range ev.Resources {
		c, _ := entity.ParseCapability(r)
		caps = append(caps, c)
	}
	return caps
}

func boolPtr(b bool) *bool { return &b }
