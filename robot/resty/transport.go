package resty

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/marcelsud/robot-notify/robot/payload"
)

/* HTTP implementation of robot.Transport
 * One POST per Submit: retries are left to the caller
 */

const DefaultTimeout = 10 * time.Second

type Transport struct {
	client *resty.Client
}

// NewTransport creates a transport whose requests time out after timeout
func NewTransport(timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Transport{client: client}
}

// Submit posts body to the signed webhook URL and checks the robot reply
func (t *Transport) Submit(ctx context.Context, url string, body []byte) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(url)
	if err != nil {
		return fmt.Errorf("posting to robot webhook: %w", err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("robot webhook returned status %d", resp.StatusCode())
	}

	if len(resp.Body()) == 0 {
		return nil
	}

	var reply payload.Response
	if err := json.Unmarshal(resp.Body(), &reply); err != nil {
		return fmt.Errorf("decoding robot reply: %w", err)
	}

	return reply.Err()
}
