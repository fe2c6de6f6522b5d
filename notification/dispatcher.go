package notification

import (
	"context"

	"encore.dev/rlog"
)

// dispatch is an indirection over the delivery provider so tests can capture
// outgoing messages. The provider integration lives behind this seam; until
// one is configured, messages are recorded in the structured log.
var dispatch = logDispatch

func logDispatch(ctx context.Context, orgID, clientID int64, message string) error {
	rlog.Info("outgoing notification", "org_id", orgID, "client_id", clientID, "message", message)
	return nil
}
