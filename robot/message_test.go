package robot_test

import (
	"testing"

	"github.com/marcelsud/robot-notify/robot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgType(t *testing.T) {
	t.Run("round trip through wire tag", func(t *testing.T) {
		for _, m := range []robot.MsgType{robot.Text, robot.Markdown, robot.Link, robot.ActionCard, robot.FeedCard} {
			assert.Equal(t, m, robot.NewMsgType(m.String()))
			assert.NoError(t, m.Validate())
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		m := robot.NewMsgType("image")
		assert.Equal(t, "unknown", m.String())
		require.Error(t, m.Validate())
	})

	t.Run("both action cards share a tag", func(t *testing.T) {
		assert.Equal(t, robot.ActionCard, robot.OverallActionCardMessage{}.MsgType())
		assert.Equal(t, robot.ActionCard, robot.IndependentActionCardMessage{}.MsgType())
	})
}

func TestMarkdownMessage_Body(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		m := robot.MarkdownMessage{Title: "T", Message: "M"}
		assert.Equal(t, "M", m.Body())
	})

	t.Run("persons, picture and page in fixed order", func(t *testing.T) {
		m := robot.MarkdownMessage{
			Message:        "M",
			ContactPersons: []string{"A", "B"},
			PicURL:         "P",
			PageURL:        "U",
		}
		assert.Equal(t, "M@A@B![screenshot](P)[页面](U)", m.Body())
	})

	t.Run("page without picture", func(t *testing.T) {
		m := robot.MarkdownMessage{Message: "M", PageURL: "U"}
		assert.Equal(t, "M[页面](U)", m.Body())
	})
}

func TestMessage_Payload(t *testing.T) {
	t.Run("markdown mentions everyone without contact persons", func(t *testing.T) {
		p := robot.MarkdownMessage{Title: "T", Message: "M"}.Payload()
		require.NotNil(t, p.At)
		assert.True(t, p.At.IsAtAll)
		assert.Empty(t, p.At.AtMobiles)
	})

	t.Run("markdown targets contact persons", func(t *testing.T) {
		p := robot.MarkdownMessage{Title: "T", Message: "M", ContactPersons: []string{"138"}}.Payload()
		require.NotNil(t, p.At)
		assert.False(t, p.At.IsAtAll)
		assert.Equal(t, []string{"138"}, p.At.AtMobiles)
	})

	t.Run("independent card keeps explicit orientation", func(t *testing.T) {
		p := robot.IndependentActionCardMessage{
			Title: "T", Text: "X", BtnOrientation: "1",
			Buttons: []robot.Button{{Title: "ok", ActionURL: "https://example.com"}},
		}.Payload()
		require.NotNil(t, p.ActionCard)
		assert.Equal(t, "1", p.ActionCard.BtnOrientation)
		assert.Equal(t, "https://example.com", p.ActionCard.Btns[0].ActionURL)
	})

	t.Run("overall card carries a single button", func(t *testing.T) {
		p := robot.OverallActionCardMessage{Title: "T", Text: "X", SingleTitle: "Read", SingleURL: "https://example.com"}.Payload()
		require.NotNil(t, p.ActionCard)
		assert.Equal(t, "actionCard", p.MsgType)
		assert.Equal(t, "Read", p.ActionCard.SingleTitle)
		assert.Empty(t, p.ActionCard.Btns)
	})

	t.Run("feed card keeps every link", func(t *testing.T) {
		links := make([]robot.FeedLink, 15)
		for i := range links {
			links[i] = robot.FeedLink{Title: "t", MessageURL: "u", PicURL: "p"}
		}
		p := robot.FeedCardMessage{Links: links}.Payload()
		require.NotNil(t, p.FeedCard)
		assert.Len(t, p.FeedCard.Links, 15)
	})
}
