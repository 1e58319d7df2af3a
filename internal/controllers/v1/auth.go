package v1

import (
	"errors"
	"net/http"

	"github.com/expenseledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIKeyHeader is the request header carrying the caller's credential.
const APIKeyHeader = "X-API-Key"

// contextUser is the key the resolved user is stored under in the
// request context.
const contextUser = "expense-ledger-user"

// Authenticate resolves the user for the API key of the request.
//
// Requests without a key and requests with an unknown key are rejected
// alike, no handler behind this middleware ever runs without a
// resolved user.
func (co Controller) Authenticate(c *gin.Context) {
	key := c.GetHeader(APIKeyHeader)
	if key == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, newErrorResponse(errAPIKeyInvalid))
		return
	}

	user, err := co.Store.UserByAPIKey(key)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, newErrorResponse(errAPIKeyInvalid))
			return
		}

		c.AbortWithStatusJSON(status(err), newErrorResponse(err))
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// currentUserID returns the ID of the user the middleware resolved.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUser).(models.User).ID
}
