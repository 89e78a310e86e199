package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/logging"
)

// NarrativeAuthRequired validates the bearer token of narrative-layer
// requests and injects the caller's subject into the context.
func NarrativeAuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if !strings.HasPrefix(header, constants.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := parseNarrativeToken(strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix)), secret)
		if err != nil {
			logging.Debug("narrative token rejected", logging.Fields{constants.LogFieldReason: err.Error()})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidToken})
			return
		}
		c.Set("narrativeSubject", claims.Subject)
		c.Next()
	}
}
