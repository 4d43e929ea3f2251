package middleware

import (
	"net/http"

	"medilink/internal/domain/entity"
	"medilink/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.Role(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireHospital is a convenience middleware for hospital-only endpoints
func RequireHospital(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospital)(next)
}

// RequireWorker is a convenience middleware for worker-only endpoints
func RequireWorker(next http.Handler) http.Handler {
	return RequireRole(entity.RoleWorker)(next)
}
