package robots

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/marcelsud/robot-notify/robot/signature"
)

/* Robot is a named chat robot: its webhook and where its signing secret comes from
 * The secret is either inline or read from an environment variable at send time
 */
type Robot struct {
	RobotID     string
	Webhook     string
	Description string
	secret      string
	secretEnv   string
}

// SecretSource describes where the secret is read from, without revealing it
func (r *Robot) SecretSource() string {
	if r.secretEnv != "" {
		return "env:" + r.secretEnv
	}
	return "inline"
}

// Secret resolves the signing secret
func (r *Robot) Secret() (string, error) {
	if r.secretEnv == "" {
		return r.secret, nil
	}
	v, ok := os.LookupEnv(r.secretEnv)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("environment variable %s is not set for robot %s", r.secretEnv, r.RobotID)
	}
	return v, nil
}

// RedactedWebhook returns the webhook with access_token masked
func (r *Robot) RedactedWebhook() string {
	u, err := url.Parse(r.Webhook)
	if err != nil {
		return "<invalid>"
	}
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Validate checks if the robot configuration is valid
func (r *Robot) Validate() error {
	if r.RobotID == "" {
		return fmt.Errorf("robot_id cannot be empty")
	}
	if r.Webhook == "" {
		return fmt.Errorf("webhook cannot be empty for robot %s", r.RobotID)
	}
	u, err := url.Parse(r.Webhook)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook must be an absolute http(s) URL for robot %s", r.RobotID)
	}
	if (r.secret == "") == (r.secretEnv == "") {
		return fmt.Errorf("exactly one of secret or secret_env must be set for robot %s", r.RobotID)
	}
	secret, err := r.Secret()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(secret, signature.SecretPrefix) {
		return fmt.Errorf("secret must start with %s for robot %s", signature.SecretPrefix, r.RobotID)
	}
	return nil
}
