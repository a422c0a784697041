package robot

import (
	"context"
	"time"
)

/* Capabilities the service depends on
 * All of them are injected through NewService
 */

// Transport delivers a JSON body to a signed webhook URL
type Transport interface {
	/* Submit performs exactly one POST, with no retries
	 * A non-nil error means the robot did not accept the message
	 */
	Submit(ctx context.Context, url string, body []byte) error
}

// Signer produces the "&timestamp=..&sign=.." suffix for a webhook
type Signer interface {
	Sign(secret string, nowMillis int64) (string, error)
}

// Recorder observes the outcome of every send
type Recorder interface {
	RecordSend(ctx context.Context, msgType string, outcome string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordSend(context.Context, string, string, time.Duration) {}
