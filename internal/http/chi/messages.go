package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/robot-notify/robot"
	"github.com/marcelsud/robot-notify/robots"
)

/* HTTP layer DTOs for the robot API
 * Separate from domain types to avoid leaking internal structure
 */

const (
	typeMarkdown              = "markdown"
	typeText                  = "text"
	typeLink                  = "link"
	typeOverallActionCard     = "overall_action_card"
	typeIndependentActionCard = "independent_action_card"
	typeFeedCard              = "feed_card"
)

// messageRequest is a flat union of every message shape, selected by Type
type messageRequest struct {
	Secret  string `json:"secret,omitempty"`
	Webhook string `json:"webhook,omitempty"`
	Type    string `json:"type"`

	Title          string          `json:"title"`
	Message        string          `json:"message"`
	Text           string          `json:"text"`
	ContactPersons []string        `json:"contact_persons"`
	PageURL        string          `json:"page_url"`
	PicURL         string          `json:"pic_url"`
	MessageURL     string          `json:"message_url"`
	SingleTitle    string          `json:"single_title"`
	SingleURL      string          `json:"single_url"`
	BtnOrientation string          `json:"btn_orientation"`
	Buttons        []buttonRequest `json:"buttons"`
	Links          []linkRequest   `json:"links"`
}

type buttonRequest struct {
	Title     string `json:"title"`
	ActionURL string `json:"action_url"`
}

type linkRequest struct {
	Title      string `json:"title"`
	MessageURL string `json:"message_url"`
	PicURL     string `json:"pic_url"`
}

// resultResponse mirrors robot.Result
type resultResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// robotResponse represents a configured robot; webhook tokens and secrets stay server side
type robotResponse struct {
	RobotID      string `json:"robot_id"`
	Description  string `json:"description,omitempty"`
	SecretSource string `json:"secret_source"`
}

func (m messageRequest) toMessage() (robot.Message, error) {
	switch m.Type {
	case typeMarkdown:
		return robot.MarkdownMessage{
			Title:          m.Title,
			Message:        m.Message,
			ContactPersons: m.ContactPersons,
			PageURL:        m.PageURL,
			PicURL:         m.PicURL,
		}, nil
	case typeText:
		return robot.TextMessage{Message: m.Message, ContactPersons: m.ContactPersons}, nil
	case typeLink:
		return robot.LinkMessage{Title: m.Title, Text: m.Text, MessageURL: m.MessageURL, PicURL: m.PicURL}, nil
	case typeOverallActionCard:
		return robot.OverallActionCardMessage{
			Title:       m.Title,
			Text:        m.Text,
			SingleTitle: m.SingleTitle,
			SingleURL:   m.SingleURL,
		}, nil
	case typeIndependentActionCard:
		buttons := make([]robot.Button, 0, len(m.Buttons))
		for _, b := range m.Buttons {
			buttons = append(buttons, robot.Button{Title: b.Title, ActionURL: b.ActionURL})
		}
		return robot.IndependentActionCardMessage{
			Title:          m.Title,
			Text:           m.Text,
			Buttons:        buttons,
			BtnOrientation: m.BtnOrientation,
		}, nil
	case typeFeedCard:
		links := make([]robot.FeedLink, 0, len(m.Links))
		for _, l := range m.Links {
			links = append(links, robot.FeedLink{Title: l.Title, MessageURL: l.MessageURL, PicURL: l.PicURL})
		}
		return robot.FeedCardMessage{Links: links}, nil
	default:
		return nil, fmt.Errorf("unknown message type: %q", m.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeResult(w http.ResponseWriter, result robot.Result) {
	writeJSON(w, result.Code, resultResponse{Code: result.Code, Message: result.Message, RequestID: result.RequestID})
}

func decodeMessage(w http.ResponseWriter, r *http.Request) (messageRequest, robot.Message, bool) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Code: http.StatusBadRequest, Message: "invalid JSON body"})
		return req, nil, false
	}

	msg, err := req.toMessage()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Code: http.StatusBadRequest, Message: err.Error()})
		return req, nil, false
	}

	return req, msg, true
}

// postMessage handles POST /v1/messages, secret and webhook travel in the body
func postMessage(robotService robot.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, msg, ok := decodeMessage(w, r)
		if !ok {
			return
		}

		writeResult(w, robotService.Send(r.Context(), req.Secret, req.Webhook, msg))
	})
}

// postRobotMessage handles POST /v1/robots/{robot_id}/messages
func postRobotMessage(robotService robot.UseCase, loader *robots.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		robotID := chi.URLParam(r, "robot_id")

		rb, err := loader.Get(robotID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, resultResponse{Code: http.StatusNotFound, Message: err.Error()})
			return
		}

		_, msg, ok := decodeMessage(w, r)
		if !ok {
			return
		}

		secret, err := rb.Secret()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, resultResponse{Code: http.StatusInternalServerError, Message: err.Error()})
			return
		}

		writeResult(w, robotService.Send(r.Context(), secret, rb.Webhook, msg))
	})
}

// getRobots handles GET /v1/robots
func getRobots(loader *robots.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all := loader.List()

		responses := make([]robotResponse, 0, len(all))
		for _, rb := range all {
			responses = append(responses, robotResponse{
				RobotID:      rb.RobotID,
				Description:  rb.Description,
				SecretSource: rb.SecretSource(),
			})
		}

		writeJSON(w, http.StatusOK, responses)
	})
}
