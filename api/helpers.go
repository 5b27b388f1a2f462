package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/minhanle/servio-BE/internal/token"
)

// recipientScope resolves the notification scope of the authenticated
// caller from the access token claims.
func (server *Server) recipientScope(c *gin.Context) notification.Scope {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
	return notification.Scope{
		RecipientID: authPayload.Subject,
		Role:        db.UserRole(authPayload.Role),
	}
}

// parseDate accepts either a plain date or a full RFC 3339 timestamp.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}

// parseReadStatus maps the readStatus query value to the optional filter.
func parseReadStatus(value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "read":
		isRead := true
		return &isRead, nil
	case "unread":
		isRead := false
		return &isRead, nil
	default:
		return nil, fmt.Errorf("invalid readStatus %q, expected read or unread", value)
	}
}
