package notification

import (
	"errors"
	"fmt"
)

// ErrValidation marks caller-fixable input errors. Handlers map it to a 400
// response; everything else coming out of the service is a store failure.
var ErrValidation = errors.New("invalid request parameters")

// ChannelError reports a failed best-effort delivery on a secondary channel.
// It is logged, never returned to dispatch callers.
type ChannelError struct {
	Channel string // "push" or "realtime"
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
