package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcelsud/robot-notify/robot"
	"github.com/marcelsud/robot-notify/robot/signature"
	"github.com/spf13/cobra"
)

func newMarkdownCmd() *cobra.Command {
	var msg robot.MarkdownMessage
	cmd := &cobra.Command{
		Use:   "markdown",
		Short: "Send a markdown message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Title, "title", "", "message title")
	cmd.Flags().StringVar(&msg.Message, "message", "", "markdown body")
	cmd.Flags().StringSliceVar(&msg.ContactPersons, "at", nil, "mobile numbers to mention, none means everyone")
	cmd.Flags().StringVar(&msg.PageURL, "page-url", "", "link appended to the body")
	cmd.Flags().StringVar(&msg.PicURL, "pic-url", "", "image appended to the body")
	return cmd
}

func newTextCmd() *cobra.Command {
	var msg robot.TextMessage
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Send a plain text message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Message, "message", "", "text content")
	cmd.Flags().StringSliceVar(&msg.ContactPersons, "at", nil, "mobile numbers to mention, none means everyone")
	return cmd
}

func newLinkCmd() *cobra.Command {
	var msg robot.LinkMessage
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Send a link card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Title, "title", "", "card title")
	cmd.Flags().StringVar(&msg.Text, "text", "", "card text")
	cmd.Flags().StringVar(&msg.MessageURL, "message-url", "", "URL opened on click")
	cmd.Flags().StringVar(&msg.PicURL, "pic-url", "", "card image")
	return cmd
}

func newActionCardCmd() *cobra.Command {
	var msg robot.OverallActionCardMessage
	cmd := &cobra.Command{
		Use:   "action-card",
		Short: "Send an action card with a single button",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Title, "title", "", "card title")
	cmd.Flags().StringVar(&msg.Text, "text", "", "markdown card text")
	cmd.Flags().StringVar(&msg.SingleTitle, "single-title", "", "button label")
	cmd.Flags().StringVar(&msg.SingleURL, "single-url", "", "button URL")
	return cmd
}

func newActionCardsCmd() *cobra.Command {
	var (
		msg     robot.IndependentActionCardMessage
		buttons []string
	)
	cmd := &cobra.Command{
		Use:   "action-cards",
		Short: "Send an action card with independent buttons",
		Example: `  robot-notify action-cards --robot ops --title Deploy --text "Ship it?" \
    --button "Yes|https://ci.example.com/approve" --button "No|https://ci.example.com/reject"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range buttons {
				button, err := parseButton(b)
				if err != nil {
					return fmt.Errorf("--button: %w", err)
				}
				msg.Buttons = append(msg.Buttons, button)
			}
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Title, "title", "", "card title")
	cmd.Flags().StringVar(&msg.Text, "text", "", "markdown card text")
	cmd.Flags().StringArrayVar(&buttons, "button", nil, `button as "title|actionURL", repeatable`)
	cmd.Flags().StringVar(&msg.BtnOrientation, "orientation", robot.DefaultBtnOrientation, `"0" vertical, "1" horizontal`)
	return cmd
}

func newFeedCardCmd() *cobra.Command {
	var links []string
	cmd := &cobra.Command{
		Use:   "feed-card",
		Short: "Send a feed card",
		Example: `  robot-notify feed-card --robot ops \
    --link "Release notes|https://example.com/notes|https://example.com/notes.png"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg robot.FeedCardMessage
			for _, l := range links {
				link, err := parseFeedLink(l)
				if err != nil {
					return fmt.Errorf("--link: %w", err)
				}
				msg.Links = append(msg.Links, link)
			}
			return send(cmd, msg)
		},
	}
	cmd.Flags().StringArrayVar(&links, "link", nil, `link as "title|messageURL|picURL", repeatable`)
	return cmd
}

// newSignCmd prints the signed query suffix without sending anything
func newSignCmd() *cobra.Command {
	var timestamp int64
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the timestamp/sign query suffix for a secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _, err := tgt.credentialsForSign()
			if err != nil {
				return err
			}
			if timestamp == 0 {
				timestamp = time.Now().UnixMilli()
			}
			suffix, err := signature.Sign(secret, timestamp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), suffix)
			return nil
		},
	}
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "milliseconds since epoch, defaults to now")
	return cmd
}

// parseButton reads "title|actionURL"; only the first "|" separates, so the URL may contain more
func parseButton(s string) (robot.Button, error) {
	title, url, ok := strings.Cut(s, "|")
	if !ok || title == "" || url == "" {
		return robot.Button{}, fmt.Errorf("expected \"title|actionURL\", got %q", s)
	}
	return robot.Button{Title: title, ActionURL: url}, nil
}

// parseFeedLink reads "title|messageURL|picURL"; a "|" after the second separator belongs to picURL
func parseFeedLink(s string) (robot.FeedLink, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return robot.FeedLink{}, fmt.Errorf("expected \"title|messageURL|picURL\", got %q", s)
	}
	return robot.FeedLink{Title: parts[0], MessageURL: parts[1], PicURL: parts[2]}, nil
}
