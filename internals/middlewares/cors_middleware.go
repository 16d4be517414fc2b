// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS. origins is a comma separated list.
func CorsMiddleware(origins string) fiber.Handler {
	parts := make([]string, 0)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	if len(parts) == 0 {
		parts = []string{"http://localhost:5173"}
	}
	allowed := strings.Join(parts, ", ")
	return cors.New(cors.Config{
		AllowOrigins: allowed,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		// fiber refuses credentials together with a wildcard origin
		AllowCredentials: !strings.Contains(allowed, "*"),
	})
}
