package interact

import (
	"net/url"
	"strings"

	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

const (
	backToTopThreshold       = 500
	scrollIndicatorThreshold = 50

	mailSubject = "Inquiry from Portfolio"
)

// MobileMenu opens and closes the small-screen navigation overlay.
type MobileMenu struct {
	hamburger *view.Node
	overlay   *view.Node
	body      *view.Node
	open      bool
}

func newMobileMenu(hamburger, overlay, body *view.Node) *MobileMenu {
	return &MobileMenu{hamburger: hamburger, overlay: overlay, body: body}
}

// IsOpen reports whether the overlay is showing.
func (m *MobileMenu) IsOpen() bool { return m.open }

// Toggle flips the menu.
func (m *MobileMenu) Toggle() { m.set(!m.open) }

// Close hides the menu.
func (m *MobileMenu) Close() { m.set(false) }

func (m *MobileMenu) set(open bool) {
	m.open = open
	m.hamburger.ToggleClass("is-active", open)
	m.overlay.ToggleClass("is-open", open)
	m.body.ToggleClass("no-scroll", open)
	m.body.ToggleClass("menu-is-open", open)
}

func (m *MobileMenu) handleClick(target *view.Node) bool {
	switch {
	case m.hamburger.Contains(target):
		m.Toggle()
	case target == m.overlay || (target.Tag == "a" && m.overlay.Contains(target)):
		m.Close()
	default:
		return false
	}
	return true
}

// ScrollChrome shows the back-to-top control and hides the scroll hint as
// the page scrolls.
type ScrollChrome struct {
	backToTop *view.Node
	indicator *view.Node
	y         float64
}

func newScrollChrome(backToTop, indicator *view.Node) *ScrollChrome {
	return &ScrollChrome{backToTop: backToTop, indicator: indicator}
}

// Scroll applies the offset y.
func (c *ScrollChrome) Scroll(y float64) {
	c.y = y
	c.backToTop.ToggleClass("visible", y > backToTopThreshold)
	c.indicator.ToggleClass("hidden", y > scrollIndicatorThreshold)
}

// Y is the last reported offset.
func (c *ScrollChrome) Y() float64 { return c.y }

// ContactForm turns a submitted message into a mail link.
type ContactForm struct {
	block *synth.ContactBlock
}

func newContactForm(block *synth.ContactBlock) *ContactForm {
	return &ContactForm{block: block}
}

// FormID is the id submissions for this form carry.
func (c *ContactForm) FormID() string { return c.block.Form.ID }

// Submit returns the mailto URL for message and clears the textarea.
func (c *ContactForm) Submit(message string) string {
	c.block.Message.ResetText("")
	return MailtoURL(c.block.Email, message)
}

// MailtoURL composes the contact link with the fixed subject and message
// as body.
func MailtoURL(email, message string) string {
	return "mailto:" + email + "?subject=" + escapeComponent(mailSubject) + "&body=" + escapeComponent(message)
}

// escapeComponent percent-encodes s for a mailto header value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
