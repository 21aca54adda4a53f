package css_test

import "github.com/npillmayer/stylecore/messages"

func newMsgs() *messages.Messages {
	return messages.New()
}
