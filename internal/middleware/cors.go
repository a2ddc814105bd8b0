package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured front-end origins. A single "*" allows any
// origin without credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"}
	cfg.ExposeHeaders = []string{"Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour

	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
