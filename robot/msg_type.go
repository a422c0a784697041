package robot

import "fmt"

/* MsgType is the wire tag of an outbound message
 * Both action-card layouts share the "actionCard" tag
 */
type MsgType int

const (
	Text MsgType = iota + 1
	Markdown
	Link
	ActionCard
	FeedCard
)

// String returns the wire representation of the message type
func (m MsgType) String() string {
	switch m {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case Link:
		return "link"
	case ActionCard:
		return "actionCard"
	case FeedCard:
		return "feedCard"
	default:
		return "unknown"
	}
}

// NewMsgType creates a MsgType from its wire representation
func NewMsgType(s string) MsgType {
	switch s {
	case "text":
		return Text
	case "markdown":
		return Markdown
	case "link":
		return Link
	case "actionCard":
		return ActionCard
	case "feedCard":
		return FeedCard
	default:
		return 0
	}
}

// Validate checks if the message type is known
func (m MsgType) Validate() error {
	if m < Text || m > FeedCard {
		return fmt.Errorf("invalid message type: %d", m)
	}
	return nil
}
