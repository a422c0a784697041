package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/robot-notify/robot"
	"github.com/marcelsud/robot-notify/robot/resty"
	"github.com/marcelsud/robot-notify/robot/signature"
	"github.com/marcelsud/robot-notify/robots"
	"github.com/spf13/cobra"
)

/* robot-notify CLI - send a single message to a robot webhook
 * Target either a robot from robots.yaml (--robot) or pass --secret and --webhook directly
 * Exit codes: 0 = sent, 1 = failed
 */

type target struct {
	robotID    string
	robotsFile string
	secret     string
	webhook    string
	timeout    time.Duration
	verbose    bool
}

var tgt target

func main() {
	rootCmd := &cobra.Command{
		Use:           "robot-notify",
		Short:         "Send signed messages to chat robot webhooks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&tgt.robotID, "robot", "", "robot_id from the robots file")
	flags.StringVar(&tgt.robotsFile, "robots-file", "robots.yaml", "path to robots.yaml")
	flags.StringVar(&tgt.secret, "secret", "", "signing secret (SEC...)")
	flags.StringVar(&tgt.webhook, "webhook", "", "robot webhook URL including access_token")
	flags.DurationVar(&tgt.timeout, "timeout", resty.DefaultTimeout, "HTTP timeout")
	flags.BoolVar(&tgt.verbose, "verbose", false, "log the send outcome")

	rootCmd.AddCommand(
		newMarkdownCmd(),
		newTextCmd(),
		newLinkCmd(),
		newActionCardCmd(),
		newActionCardsCmd(),
		newFeedCardCmd(),
		newSignCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// credentials resolves the secret and webhook for the current invocation
func (t target) credentials() (string, string, error) {
	if t.robotID == "" {
		if t.secret == "" || t.webhook == "" {
			return "", "", errors.New("either --robot or both --secret and --webhook must be set")
		}
		return t.secret, t.webhook, nil
	}

	loader := robots.NewLoader()
	if err := loader.Load(t.robotsFile); err != nil {
		return "", "", err
	}
	rb, err := loader.Get(t.robotID)
	if err != nil {
		return "", "", err
	}
	secret, err := rb.Secret()
	if err != nil {
		return "", "", err
	}
	return secret, rb.Webhook, nil
}

// credentialsForSign is like credentials but does not need a webhook
func (t target) credentialsForSign() (string, string, error) {
	if t.robotID == "" && t.secret != "" {
		return t.secret, t.webhook, nil
	}
	if t.robotID == "" {
		return "", "", errors.New("either --robot or --secret must be set")
	}
	return t.credentials()
}

func (t target) service() *robot.Service {
	opts := []robot.Option{}
	if t.verbose {
		opts = append(opts, robot.WithLogger(httplog.NewLogger("robot-notify", httplog.Options{})))
	}
	return robot.NewService(resty.NewTransport(t.timeout), signature.HMACSigner{}, opts...)
}

// send delivers msg and turns a failed Result into a command error
func send(cmd *cobra.Command, msg robot.Message) error {
	secret, webhook, err := tgt.credentials()
	if err != nil {
		return err
	}

	result := tgt.service().Send(cmd.Context(), secret, webhook, msg)
	if !result.OK() {
		return fmt.Errorf("%d %s (request_id=%s)", result.Code, result.Message, result.RequestID)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s (request_id=%s)\n", result.Code, result.Message, result.RequestID)
	return nil
}
