package alert

import (
	"context"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

// AlertInterface is the notification dispatcher consumed by the handlers.
// Every method is best-effort: callers run them through FireAndForget and a
// failure is logged, never reported to the end user.
type AlertInterface interface {
	// ApplicationSubmitted notifies a project owner about a new PENDING
	// application on one of their needs.
	ApplicationSubmitted(ctx context.Context, applicationID uint) error
	// ApplicationDecided notifies an applicant that their application was
	// accepted or rejected.
	ApplicationDecided(ctx context.Context, applicationID uint, decision model.ReviewDecision, note string) error
	// EquityAnomaly notifies platform admins that a project's equity
	// allocation exceeds 100%.
	EquityAnomaly(ctx context.Context, projectID uint, totalAllocated int) error
}

// mailHandlerInterface is implemented by the concrete mail transports.
// sent=false with a nil error means the delivery was skipped because the
// recipient has no known address.
type mailHandlerInterface interface {
	SendMessageTo(ctx context.Context, receiver *model.User, subject, body string) (sent bool, err error)
}
