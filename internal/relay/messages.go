// Package relay carries the structured message protocol between the
// sandboxed bulletin document and the host: clicks flow out of the sandbox,
// menu configuration flows back in. Messages are a closed tagged union with
// a "type" discriminant, validated defensively on receipt: an unknown or
// malformed message is ignored, never fatal.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type discriminates relay messages.
type Type string

const (
	// Sandbox → host.
	TypeImageClicked  Type = "IMAGE_CLICKED"
	TypeTextClicked   Type = "TEXT_CLICKED"
	TypeButtonClicked Type = "BUTTON_CLICKED"

	// Host → sandbox.
	TypeHideButtons        Type = "HIDE_BUTTONS"
	TypeUpdateButtonConfig Type = "UPDATE_BUTTON_CONFIG"
)

// ErrUnknownType marks a message whose type is not part of the protocol.
var ErrUnknownType = errors.New("relay: unknown message type")

// Button is one menu control as shipped to the sandbox: identity, glyph,
// absolute position in the sandbox viewport, and its entry stagger delay.
type Button struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Glyph   string  `json:"glyph"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	DelayMS int     `json:"delayMs"`
	Close   bool    `json:"close,omitempty"`
}

// Envelope is the single wire shape for every relay message. Fields beyond
// Type are populated per message type; each message is self-contained, so
// delivery order never matters.
type Envelope struct {
	Type Type `json:"type"`

	// IMAGE_CLICKED
	ImageIndex     *int    `json:"imageIndex,omitempty"`
	X              float64 `json:"x,omitempty"`
	Y              float64 `json:"y,omitempty"`
	ViewportWidth  float64 `json:"viewportWidth,omitempty"`
	ViewportHeight float64 `json:"viewportHeight,omitempty"`

	// BUTTON_CLICKED
	ButtonID string `json:"buttonId,omitempty"`

	// UPDATE_BUTTON_CONFIG
	Buttons []Button `json:"buttons,omitempty"`

	// TOUR_STEP
	Tour *TourState `json:"tour,omitempty"`
}

// Decode parses and validates an inbound message.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("relay: decoding message: %w", err)
	}
	if err := env.Validate(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// Validate checks the discriminant and the fields it requires.
func (e Envelope) Validate() error {
	switch e.Type {
	case TypeImageClicked:
		if e.ImageIndex == nil || *e.ImageIndex < 0 {
			return fmt.Errorf("relay: %s requires a non-negative imageIndex", e.Type)
		}
		if e.ViewportWidth <= 0 || e.ViewportHeight <= 0 {
			return fmt.Errorf("relay: %s requires a measured viewport", e.Type)
		}
		return nil
	case TypeButtonClicked:
		if e.ButtonID == "" {
			return fmt.Errorf("relay: %s requires buttonId", e.Type)
		}
		return nil
	case TypeTextClicked, TypeHideButtons:
		return nil
	case TypeUpdateButtonConfig:
		if len(e.Buttons) == 0 {
			return fmt.Errorf("relay: %s requires buttons", e.Type)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, string(e.Type))
	}
}

// HideButtons builds the host→sandbox dismiss message.
func HideButtons() Envelope {
	return Envelope{Type: TypeHideButtons}
}

// ButtonConfig builds the host→sandbox menu configuration message.
func ButtonConfig(buttons []Button) Envelope {
	return Envelope{Type: TypeUpdateButtonConfig, Buttons: buttons}
}
