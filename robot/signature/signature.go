package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// SecretPrefix is the prefix of secrets issued on the robot security settings page
	SecretPrefix = "SEC"

	// Tolerance is how far a timestamp may drift from the provider clock
	Tolerance = time.Hour

	timestampParam = "timestamp"
	signParam      = "sign"
)

/* HMACSigner is the default signer used by robot.Service
 * It carries no state, so a zero value is ready to use
 */
type HMACSigner struct{}

// Sign implements robot.Signer
func (HMACSigner) Sign(secret string, nowMillis int64) (string, error) {
	return Sign(secret, nowMillis)
}

// Compute returns the base64 HMAC-SHA256 of "{nowMillis}\n{secret}" keyed by secret
func Compute(secret string, nowMillis int64) (string, error) {
	stringToSign := strconv.FormatInt(nowMillis, 10) + "\n" + secret

	mac := hmac.New(sha256.New, []byte(secret))
	if _, err := mac.Write([]byte(stringToSign)); err != nil {
		return "", fmt.Errorf("computing hmac: %w", err)
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Sign returns the query suffix appended to a robot webhook:
// &timestamp={nowMillis}&sign={urlencoded base64 signature}
func Sign(secret string, nowMillis int64) (string, error) {
	sig, err := Compute(secret, nowMillis)
	if err != nil {
		return "", err
	}

	return "&" + timestampParam + "=" + strconv.FormatInt(nowMillis, 10) +
		"&" + signParam + "=" + url.QueryEscape(sig), nil
}

// ParseSuffix reads the timestamp and the decoded sign back from a suffix or a signed URL
func ParseSuffix(suffix string) (string, string, error) {
	if i := strings.Index(suffix, "?"); i >= 0 {
		suffix = suffix[i+1:]
	}

	values, err := url.ParseQuery(strings.TrimPrefix(suffix, "&"))
	if err != nil {
		return "", "", fmt.Errorf("parsing signature suffix: %w", err)
	}

	timestamp := values.Get(timestampParam)
	sign := values.Get(signParam)
	if timestamp == "" || sign == "" {
		return "", "", fmt.Errorf("signature suffix must carry %s and %s", timestampParam, signParam)
	}

	return timestamp, sign, nil
}

// Verify checks a timestamp/sign pair, such as the headers of an outgoing robot callback.
// sign is the base64 signature, already url-decoded.
func Verify(secret, timestamp, sign string, now time.Time) error {
	millis, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
	}

	skew := now.Sub(time.UnixMilli(millis))
	if skew < 0 {
		skew = -skew
	}
	if skew > Tolerance {
		return fmt.Errorf("timestamp outside tolerance: skew %s", skew)
	}

	expected, err := Compute(secret, millis)
	if err != nil {
		return fmt.Errorf("calculating signature: %w", err)
	}

	// Use constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sign)) != 1 {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}
