package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/types"
	"github.com/tieubaoca/docextractor/utils"
)

const UploadClaimsKey = "upload_claims"

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
		Status:  false,
		Message: message,
	})
}

// RequireUploadToken accepts requests carrying a bearer token signed with
// secret. An empty secret disables the check.
func RequireUploadToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseUploadToken(secret, parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid upload token")
			return
		}
		c.Set(UploadClaimsKey, claims)
		c.Next()
	}
}
