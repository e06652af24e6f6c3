package middleware

import (
	"context"
	"net/http"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
)

// RoleAuthMiddleware checks if the user has one of the required roles
func RoleAuthMiddleware(allowedRoles ...aggregate.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Role is set by the JWT middleware
			role, ok := GetUserRole(r.Context())
			if !ok || role == "" {
				sendUnauthorized(w, "User role not found")
				return
			}

			hasPermission := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					hasPermission = true
					break
				}
			}

			if !hasPermission {
				sendForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin middleware that requires Admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleAdmin)(next)
}

// RequireProvider middleware that requires Provider or Admin role
func RequireProvider(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleProvider, aggregate.RoleAdmin)(next)
}

// RequireCustomer middleware that allows any authenticated user
func RequireCustomer(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleCustomer, aggregate.RoleProvider, aggregate.RoleAdmin)(next)
}

// sendForbidden sends a forbidden response
func sendForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error": "` + message + `"}`))
}

// GetUserRole extracts the user role from context
func GetUserRole(ctx context.Context) (aggregate.UserRole, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	if !ok {
		return "", false
	}
	return aggregate.UserRole(role), true
}

// WithUserRole returns a context carrying the given role
func WithUserRole(ctx context.Context, role aggregate.UserRole) context.Context {
	return context.WithValue(ctx, RoleKey, string(role))
}
