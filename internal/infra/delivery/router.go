package delivery

import (
	"context"
	"fmt"

	"github.com/calebms7/shepherd-backend/internal/workflow"
)

// Router fans a message out to the deliverer for its channel.
type Router struct {
	Email workflow.Deliverer
	SMS   workflow.Deliverer
}

func NewRouter(email, sms workflow.Deliverer) *Router {
	return &Router{Email: email, SMS: sms}
}

func (r *Router) Send(ctx context.Context, msg workflow.Message) (string, error) {
	var d workflow.Deliverer

	switch msg.Channel {
	case workflow.ChannelEmail:
		d = r.Email
	case workflow.ChannelSMS:
		d = r.SMS
	default:
		return "", fmt.Errorf("unknown delivery channel %q", msg.Channel)
	}

	if d == nil {
		return "", fmt.Errorf("no deliverer configured for channel %q", msg.Channel)
	}

	return d.Send(ctx, msg)
}
