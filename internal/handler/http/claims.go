package http

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// actorFromContext extracts the authenticated employee and center from
// verified token claims. Services receive the actor explicitly and never
// read claims themselves.
func actorFromContext(ctx context.Context) (employeeID, centerID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	centerID, ok = claims["center_id"].(string)
	if !ok || centerID == "" {
		return "", "", fmt.Errorf("center_id claim is missing or invalid")
	}

	return employeeID, centerID, nil
}

func isAdmin(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}
