package robot

import (
	"strings"

	"github.com/marcelsud/robot-notify/robot/payload"
)

const (
	// DefaultBtnOrientation lays independent buttons out vertically; "1" is horizontal
	DefaultBtnOrientation = "0"

	screenshotLabel = "screenshot"
	pageLinkLabel   = "页面"
)

/* Message is one of the fixed outbound shapes
 * Values are built per call and never mutated by the service
 */
type Message interface {
	MsgType() MsgType
	// Validate returns a *ValidationError naming the first empty required field
	Validate() error
	Payload() payload.Request
}

// MarkdownMessage mentions ContactPersons by mobile number, or everyone when empty
type MarkdownMessage struct {
	Title          string
	Message        string
	ContactPersons []string
	PageURL        string
	PicURL         string
}

type TextMessage struct {
	Message        string
	ContactPersons []string
}

type LinkMessage struct {
	Title      string
	Text       string
	MessageURL string
	PicURL     string
}

// OverallActionCardMessage renders one button spanning the whole card
type OverallActionCardMessage struct {
	Title       string
	Text        string
	SingleTitle string
	SingleURL   string
}

// IndependentActionCardMessage renders one button per entry in Buttons
type IndependentActionCardMessage struct {
	Title          string
	Text           string
	Buttons        []Button
	BtnOrientation string
}

type Button struct {
	Title     string
	ActionURL string
}

type FeedCardMessage struct {
	Links []FeedLink
}

type FeedLink struct {
	Title      string
	MessageURL string
	PicURL     string
}

// field is a named required value, checked in declaration order
type field struct {
	name  string
	empty bool
}

func str(name, v string) field {
	return field{name: name, empty: blank(v)}
}

func list(name string, n int) field {
	return field{name: name, empty: n == 0}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.empty {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// at mentions everyone when persons is empty
func at(persons []string) *payload.At {
	if len(persons) == 0 {
		return &payload.At{IsAtAll: true}
	}
	return &payload.At{AtMobiles: persons}
}

func (MarkdownMessage) MsgType() MsgType { return Markdown }

func (m MarkdownMessage) Validate() error {
	return requireFields(str("title", m.Title), str("message", m.Message))
}

// Body concatenates message, "@person" tokens, picture and page link, in that order
func (m MarkdownMessage) Body() string {
	var b strings.Builder
	b.WriteString(m.Message)
	for _, p := range m.ContactPersons {
		b.WriteString("@" + p)
	}
	if !blank(m.PicURL) {
		b.WriteString("![" + screenshotLabel + "](" + m.PicURL + ")")
	}
	if !blank(m.PageURL) {
		b.WriteString("[" + pageLinkLabel + "](" + m.PageURL + ")")
	}
	return b.String()
}

func (m MarkdownMessage) Payload() payload.Request {
	return payload.Request{
		MsgType:  Markdown.String(),
		At:       at(m.ContactPersons),
		Markdown: &payload.Markdown{Title: m.Title, Text: m.Body()},
	}
}

func (TextMessage) MsgType() MsgType { return Text }

func (m TextMessage) Validate() error {
	return requireFields(str("message", m.Message))
}

func (m TextMessage) Payload() payload.Request {
	return payload.Request{
		MsgType: Text.String(),
		At:      at(m.ContactPersons),
		Text:    &payload.Text{Content: m.Message},
	}
}

func (LinkMessage) MsgType() MsgType { return Link }

func (m LinkMessage) Validate() error {
	return requireFields(str("title", m.Title), str("text", m.Text), str("messageUrl", m.MessageURL))
}

func (m LinkMessage) Payload() payload.Request {
	return payload.Request{
		MsgType: Link.String(),
		Link: &payload.Link{
			Title:      m.Title,
			Text:       m.Text,
			PicURL:     m.PicURL,
			MessageURL: m.MessageURL,
		},
	}
}

func (OverallActionCardMessage) MsgType() MsgType { return ActionCard }

func (m OverallActionCardMessage) Validate() error {
	return requireFields(
		str("title", m.Title),
		str("text", m.Text),
		str("singleTitle", m.SingleTitle),
		str("singleURL", m.SingleURL),
	)
}

func (m OverallActionCardMessage) Payload() payload.Request {
	return payload.Request{
		MsgType: ActionCard.String(),
		ActionCard: &payload.ActionCard{
			Title:       m.Title,
			Text:        m.Text,
			SingleTitle: m.SingleTitle,
			SingleURL:   m.SingleURL,
		},
	}
}

func (IndependentActionCardMessage) MsgType() MsgType { return ActionCard }

func (m IndependentActionCardMessage) Validate() error {
	return requireFields(str("title", m.Title), str("text", m.Text), list("buttons", len(m.Buttons)))
}

func (m IndependentActionCardMessage) Payload() payload.Request {
	orientation := m.BtnOrientation
	if blank(orientation) {
		orientation = DefaultBtnOrientation
	}

	btns := make([]payload.Btn, 0, len(m.Buttons))
	for _, b := range m.Buttons {
		btns = append(btns, payload.Btn{Title: b.Title, ActionURL: b.ActionURL})
	}

	return payload.Request{
		MsgType: ActionCard.String(),
		ActionCard: &payload.ActionCard{
			Title:          m.Title,
			Text:           m.Text,
			BtnOrientation: orientation,
			Btns:           btns,
		},
	}
}

func (FeedCardMessage) MsgType() MsgType { return FeedCard }

func (m FeedCardMessage) Validate() error {
	return requireFields(list("linkList", len(m.Links)))
}

func (m FeedCardMessage) Payload() payload.Request {
	links := make([]payload.FeedLink, 0, len(m.Links))
	for _, l := range m.Links {
		links = append(links, payload.FeedLink{Title: l.Title, MessageURL: l.MessageURL, PicURL: l.PicURL})
	}

	return payload.Request{
		MsgType:  FeedCard.String(),
		FeedCard: &payload.FeedCard{Links: links},
	}
}
