package server

import (
	"encoding/json"
	"fmt"

	"github.com/asif-cs/portfolio/internal/interact"
	"github.com/asif-cs/portfolio/internal/view"
)

// inbound is one client message: an event name and its payload.
type inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// decodeEvent turns a client message into an engine event.
func decodeEvent(msg []byte) (interact.Event, error) {
	var in inbound
	if err := json.Unmarshal(msg, &in); err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}

	switch in.Type {
	case "click":
		var e interact.Click
		err := unmarshalData(in.Data, &e)
		return e, err
	case "key":
		var e interact.Key
		err := unmarshalData(in.Data, &e)
		return e, err
	case "intersect":
		var e interact.Intersect
		err := unmarshalData(in.Data, &e)
		return e, err
	case "scroll":
		var e interact.Scroll
		err := unmarshalData(in.Data, &e)
		return e, err
	case "resize":
		var e interact.Resize
		err := unmarshalData(in.Data, &e)
		return e, err
	case "submit":
		var e interact.Submit
		err := unmarshalData(in.Data, &e)
		return e, err
	case "focus":
		var e interact.Focus
		err := unmarshalData(in.Data, &e)
		return e, err
	default:
		return nil, fmt.Errorf("unknown event type %q", in.Type)
	}
}

func unmarshalData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding event data: %w", err)
	}
	return nil
}

// outbound is a server message: an update or a reload request.
type outbound struct {
	Type string `json:"type"`
	view.Batch
	Effects []wireEffect `json:"effects,omitempty"`
}

type wireEffect struct {
	Type   string  `json:"type"`
	URL    string  `json:"url,omitempty"`
	Top    float64 `json:"top"`
	Smooth bool    `json:"smooth,omitempty"`
}

var reloadMessage = outbound{Type: "reload"}

func encodeUpdate(u interact.Update) outbound {
	out := outbound{Type: "update", Batch: u.Batch}
	for _, fx := range u.Effects {
		switch fx := fx.(type) {
		case interact.Navigate:
			out.Effects = append(out.Effects, wireEffect{Type: "navigate", URL: fx.URL})
		case interact.ScrollTo:
			out.Effects = append(out.Effects, wireEffect{Type: "scroll", Top: fx.Top, Smooth: fx.Smooth})
		}
	}
	return out
}
