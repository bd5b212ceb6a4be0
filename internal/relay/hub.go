package relay

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/monthlies/bulletin/internal/arc"
	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/editor"
	"github.com/monthlies/bulletin/internal/tour"
)

// TypeReloadPreview is a host to host-page hint that draft state changed
// and the preview document must be regenerated. It is never forwarded into
// the sandbox and never arrives inbound.
const TypeReloadPreview Type = "RELOAD_PREVIEW"

// TypeTourStep carries guided-tour progress to the host page. Sent whenever
// an action completes the active step; like RELOAD_PREVIEW it stays on the
// host side and never arrives inbound.
const TypeTourStep Type = "TOUR_STEP"

// TourState is the host-page view of the guided tour: the step to point at
// next, or Done once the sequence is complete.
type TourState struct {
	Anchor string `json:"anchor,omitempty"`
	Text   string `json:"text,omitempty"`
	Done   bool   `json:"done,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StaggerStepMS is the per-index entry delay between menu buttons.
const StaggerStepMS = 40

// Session is the host-side state for one connected editing surface: the
// edit-mode controller and the guided tour attached to it.
type Session struct {
	DraftID    string
	Controller *editor.Controller
	Tour       *tour.Tour
}

// NewSession creates a session with a fresh controller and the default
// onboarding tour attached.
func NewSession(draftID string) *Session {
	s := &Session{
		DraftID:    draftID,
		Controller: editor.New(),
		Tour:       tour.New(tour.DefaultSteps()),
	}
	s.Tour.Attach(s.Controller)
	return s
}

// Hub terminates relay websockets and dispatches sandbox events to the
// edit-mode controller. Each connection gets its own Session; the draft
// store is shared.
type Hub struct {
	store  *draft.Store
	arcCfg arc.Config
}

// NewHub creates a relay hub.
func NewHub(store *draft.Store, arcCfg arc.Config) *Hub {
	return &Hub{store: store, arcCfg: arcCfg}
}

// RegisterRoutes mounts the relay websocket endpoint.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/api/relay/{draftID}", h.handleWS)
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("relay: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := NewSession(chi.URLParam(r, "draftID"))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("relay: websocket read: %v", err)
			}
			return
		}

		env, err := Decode(raw)
		if err != nil {
			// Unknown or malformed messages are dropped, never fatal.
			log.Printf("relay: ignoring message: %v", err)
			continue
		}

		responses := h.HandleEnvelope(r.Context(), sess, env)
		for _, resp := range responses {
			if err := conn.WriteJSON(resp); err != nil {
				log.Printf("relay: websocket write: %v", err)
				return
			}
		}
	}
}

// HandleEnvelope applies one validated sandbox event to the session and
// returns the messages to send back. Split from the websocket loop so the
// dispatch logic is testable without a connection.
func (h *Hub) HandleEnvelope(ctx context.Context, sess *Session, env Envelope) []Envelope {
	before, active := sess.Tour.Current()

	// Any click relayed out of the document satisfies the tour's opening
	// "interact with the preview" step; the action steps advance through
	// the controller hook.
	if env.Type == TypeImageClicked || env.Type == TypeTextClicked {
		sess.Tour.Advance(tour.AnchorPreview)
	}

	var out []Envelope
	switch env.Type {
	case TypeImageClicked:
		out = h.handleImageClicked(sess, env)
	case TypeTextClicked:
		sess.Controller.SelectAction(editor.ModeBlurb)
		out = []Envelope{HideButtons()}
	case TypeButtonClicked:
		out = h.handleButtonClicked(ctx, sess, env)
	default:
		// Validated host-to-sandbox types arriving inbound are ignored.
		return nil
	}

	if active {
		if now, ok := sess.Tour.Current(); !ok {
			out = append(out, Envelope{Type: TypeTourStep, Tour: &TourState{Done: true}})
		} else if now != before {
			out = append(out, Envelope{Type: TypeTourStep, Tour: &TourState{Anchor: string(now.Anchor), Text: now.Text}})
		}
	}
	return out
}

// handleImageClicked computes the arc layout for the click and ships the
// resulting button configuration to the sandbox.
func (h *Hub) handleImageClicked(sess *Session, env Envelope) []Envelope {
	actions := []struct {
		id    string
		label string
		glyph string
	}{
		{id: "replace", label: "Replace photo", glyph: "↺"},
		{id: "delete", label: "Remove photo", glyph: "✕"},
		{id: "template", label: "Change layout", glyph: "▦"},
	}

	lay, err := arc.Compute(env.X, env.Y, env.ViewportWidth, env.ViewportHeight, len(actions), h.arcCfg)
	if err != nil {
		log.Printf("relay: arc layout: %v", err)
		return nil
	}
	delays := arc.Stagger(len(actions), StaggerStepMS*time.Millisecond)

	half := h.arcCfg.ButtonSize / 2
	buttons := make([]Button, 0, len(actions)+1)
	for i, a := range actions {
		buttons = append(buttons, Button{
			ID:      a.id,
			Label:   a.label,
			Glyph:   a.glyph,
			X:       env.X + lay.Positions[i].X - half,
			Y:       env.Y + lay.Positions[i].Y - half,
			DelayMS: int(delays[i] / time.Millisecond),
		})
	}
	// The dismiss control sits at the click origin itself, after the
	// action buttons' stagger.
	buttons = append(buttons, Button{
		ID:      "close",
		Label:   "Close",
		Glyph:   "×",
		X:       env.X + lay.Close.X - half,
		Y:       env.Y + lay.Close.Y - half,
		DelayMS: len(actions) * StaggerStepMS,
		Close:   true,
	})

	sess.Controller.SetMenuVisible(true)
	return []Envelope{ButtonConfig(buttons)}
}

func (h *Hub) handleButtonClicked(ctx context.Context, sess *Session, env Envelope) []Envelope {
	sess.Controller.SetMenuVisible(false)
	out := []Envelope{HideButtons()}

	switch env.ButtonID {
	case "close":
		sess.Controller.Close()
	case "replace":
		sess.Controller.SelectAction(editor.ModeImages)
	case "template":
		sess.Controller.SelectAction(editor.ModeTemplate)
	case "delete":
		if env.ImageIndex == nil {
			log.Printf("relay: delete without image index")
			break
		}
		if err := h.store.DeleteImage(ctx, sess.DraftID, *env.ImageIndex); err != nil {
			log.Printf("relay: deleting image: %v", err)
			break
		}
		out = append(out, Envelope{Type: TypeReloadPreview})
	default:
		log.Printf("relay: unknown button %q", env.ButtonID)
	}
	return out
}
