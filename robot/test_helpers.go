package robot

import (
	"github.com/marcelsud/robot-notify/robot/payload"
	"github.com/stretchr/testify/mock"
)

// MatchPayload creates a custom matcher for the JSON body passed to Transport.Submit
func MatchPayload(matcher func(payload.Request) bool) interface{} {
	return mock.MatchedBy(func(body []byte) bool {
		req, err := payload.Parse(body)
		if err != nil {
			return false
		}
		return matcher(req)
	})
}
