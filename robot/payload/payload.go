package payload

import (
	"encoding/json"
	"fmt"
)

/* Request is the JSON body accepted by the robot send endpoint
 * Top-level shape: { msgtype, at?, <msgtype>: {...} }
 * Only the object matching MsgType is expected to be set
 */
type Request struct {
	MsgType    string      `json:"msgtype"`
	At         *At         `json:"at,omitempty"`
	Text       *Text       `json:"text,omitempty"`
	Markdown   *Markdown   `json:"markdown,omitempty"`
	Link       *Link       `json:"link,omitempty"`
	ActionCard *ActionCard `json:"actionCard,omitempty"`
	FeedCard   *FeedCard   `json:"feedCard,omitempty"`
}

// At selects the chat members to mention
type At struct {
	AtMobiles []string `json:"atMobiles,omitempty"`
	IsAtAll   bool     `json:"isAtAll,omitempty"`
}

type Text struct {
	Content string `json:"content"`
}

type Markdown struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Link struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	PicURL     string `json:"picUrl,omitempty"`
	MessageURL string `json:"messageUrl"`
}

/* ActionCard covers both card layouts
 * Overall jump sets SingleTitle/SingleURL, independent jump sets Btns/BtnOrientation
 */
type ActionCard struct {
	Title          string `json:"title"`
	Text           string `json:"text"`
	SingleTitle    string `json:"singleTitle,omitempty"`
	SingleURL      string `json:"singleURL,omitempty"`
	BtnOrientation string `json:"btnOrientation,omitempty"`
	Btns           []Btn  `json:"btns,omitempty"`
}

type Btn struct {
	Title     string `json:"title"`
	ActionURL string `json:"actionURL"`
}

type FeedCard struct {
	Links []FeedLink `json:"links"`
}

type FeedLink struct {
	Title      string `json:"title"`
	MessageURL string `json:"messageURL"`
	PicURL     string `json:"picURL"`
}

// Bytes returns the JSON-encoded request
func (r Request) Bytes() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	return b, nil
}

// Parse decodes a request body
func Parse(data []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("unmarshaling request: %w", err)
	}
	if r.MsgType == "" {
		return Request{}, fmt.Errorf("msgtype is required")
	}
	return r, nil
}

// Response is the body returned by the robot send endpoint
type Response struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// Err returns nil when the provider accepted the message
func (r Response) Err() error {
	if r.ErrCode == 0 {
		return nil
	}
	return fmt.Errorf("robot rejected message: errcode=%d errmsg=%s", r.ErrCode, r.ErrMsg)
}
