package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/auth"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
)

// requesterFromRequest builds the acting identity from the verified
// access token. Every ledger operation downstream takes it explicitly.
func requesterFromRequest(r *http.Request) (leave.Requester, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return leave.Requester{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return leave.Requester{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return leave.Requester{}, auth.ErrInvalidToken
	}

	role := user.Role(roleStr)
	if !role.Valid() {
		return leave.Requester{}, auth.ErrInvalidToken
	}

	return leave.Requester{Role: role, ID: employeeID}, nil
}

func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
