// Package editor holds the host-side edit-mode state machine: which editing
// surface (images, blurb, template picker) is active while a bulletin draft
// is open. Menu visibility is tracked independently of the active mode;
// both can change from the same click.
package editor

import "sync"

// Mode is the active editing surface.
type Mode string

const (
	ModeNone     Mode = "none"
	ModeImages   Mode = "images"
	ModeBlurb    Mode = "blurb"
	ModeTemplate Mode = "template"
)

// Controller coordinates edit-mode transitions for one editing session.
// Safe for concurrent use; relay delivery and HTTP handlers may race.
type Controller struct {
	mu          sync.Mutex
	mode        Mode
	menuVisible bool
	hooks       []func(Mode)
}

// New returns a controller in ModeNone with the menu hidden.
func New() *Controller {
	return &Controller{mode: ModeNone}
}

// Mode returns the active editing surface.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SelectAction applies toggle semantics: selecting the active mode returns
// to ModeNone, selecting a different mode switches to it (no stacking), and
// ModeNone acts as the explicit close action. Returns the resulting mode.
// Registered hooks observe the selected target, not the resulting mode, so
// a guided tour can react to "user opened the image editor" even when that
// toggled it closed.
func (c *Controller) SelectAction(target Mode) Mode {
	c.mu.Lock()
	switch {
	case target == ModeNone || target == c.mode:
		c.mode = ModeNone
	default:
		c.mode = target
	}
	result := c.mode
	hooks := make([]func(Mode), len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.Unlock()

	for _, h := range hooks {
		h(target)
	}
	return result
}

// Close returns the controller to ModeNone without notifying hooks.
func (c *Controller) Close() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeNone
	return c.mode
}

// SetMenuVisible records whether the arc menu is currently shown. This is
// hover state, independent of the edit mode.
func (c *Controller) SetMenuVisible(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuVisible = v
}

// MenuVisible reports the arc menu visibility flag.
func (c *Controller) MenuVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.menuVisible
}

// Notify registers an action-taken hook. The controller does not know what
// consumers (such as the guided tour) do with the notification.
func (c *Controller) Notify(hook func(Mode)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook)
}
