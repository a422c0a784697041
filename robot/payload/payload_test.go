package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Bytes(t *testing.T) {
	t.Run("success - text with at all", func(t *testing.T) {
		r := Request{
			MsgType: "text",
			At:      &At{IsAtAll: true},
			Text:    &Text{Content: "deploy finished"},
		}

		b, err := r.Bytes()
		require.NoError(t, err)
		assert.JSONEq(t, `{"msgtype":"text","at":{"isAtAll":true},"text":{"content":"deploy finished"}}`, string(b))
	})

	t.Run("success - independent action card", func(t *testing.T) {
		r := Request{
			MsgType: "actionCard",
			ActionCard: &ActionCard{
				Title:          "Release",
				Text:           "v1.2.0 ready",
				BtnOrientation: "0",
				Btns: []Btn{
					{Title: "Approve", ActionURL: "https://example.com/ok"},
					{Title: "Reject", ActionURL: "https://example.com/no"},
				},
			},
		}

		b, err := r.Bytes()
		require.NoError(t, err)

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &raw))
		assert.Equal(t, "actionCard", raw["msgtype"])
		assert.NotContains(t, raw, "at")

		card := raw["actionCard"].(map[string]interface{})
		assert.Equal(t, "0", card["btnOrientation"])
		assert.NotContains(t, card, "singleTitle")
		assert.Len(t, card["btns"], 2)
	})

	t.Run("success - feed card field names", func(t *testing.T) {
		r := Request{
			MsgType: "feedCard",
			FeedCard: &FeedCard{Links: []FeedLink{
				{Title: "a", MessageURL: "https://example.com/a", PicURL: "https://example.com/a.png"},
			}},
		}

		b, err := r.Bytes()
		require.NoError(t, err)
		assert.JSONEq(t, `{"msgtype":"feedCard","feedCard":{"links":[{"title":"a","messageURL":"https://example.com/a","picURL":"https://example.com/a.png"}]}}`, string(b))
	})
}

func TestParse(t *testing.T) {
	t.Run("success - markdown", func(t *testing.T) {
		r, err := Parse([]byte(`{"msgtype":"markdown","markdown":{"title":"t","text":"x"},"at":{"atMobiles":["138"]}}`))
		require.NoError(t, err)
		assert.Equal(t, "markdown", r.MsgType)
		require.NotNil(t, r.Markdown)
		assert.Equal(t, "t", r.Markdown.Title)
		require.NotNil(t, r.At)
		assert.Equal(t, []string{"138"}, r.At.AtMobiles)
	})

	t.Run("error - invalid JSON", func(t *testing.T) {
		_, err := Parse([]byte(`{not json`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshaling request")
	})

	t.Run("error - missing msgtype", func(t *testing.T) {
		_, err := Parse([]byte(`{"text":{"content":"x"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "msgtype is required")
	})
}

func TestResponse_Err(t *testing.T) {
	t.Run("success - zero errcode", func(t *testing.T) {
		assert.NoError(t, Response{ErrCode: 0, ErrMsg: "ok"}.Err())
	})

	t.Run("error - non zero errcode", func(t *testing.T) {
		err := Response{ErrCode: 310000, ErrMsg: "sign not match"}.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "errcode=310000")
		assert.Contains(t, err.Error(), "sign not match")
	})
}
