package middleware

import (
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
)

// AdminOnly guards admin routes. Must sit behind AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
