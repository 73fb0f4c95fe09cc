// Package handlers exposes the HTTP API. Every route under /users/me is
// scoped to the user identified by the request's JWT.
package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/auth"
)

// caller bundles the identity claims of the authenticated request.
type caller struct {
	UserID string
	Email  string
	Name   string
}

func requireCaller(c echo.Context) (caller, error) {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return caller{}, err
	}
	return caller{
		UserID: userID,
		Email:  auth.EmailFromContext(c),
		Name:   auth.NameFromContext(c),
	}, nil
}
