package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/advisor"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
)

type SuggestionsHandler struct {
	store   *hybrid.Reconciler
	advisor *advisor.Advisor
}

func NewSuggestionsHandler(store *hybrid.Reconciler, adv *advisor.Advisor) *SuggestionsHandler {
	return &SuggestionsHandler{store: store, advisor: adv}
}

func (h *SuggestionsHandler) Register(e *echo.Echo) {
	group := e.Group("/users/me/contacts/:id")
	group.GET("/suggestions", h.Suggestions)
	group.POST("/advice", h.Advice)
}

func (h *SuggestionsHandler) findContact(c echo.Context, who caller) (contact.Contact, error) {
	contactID := strings.TrimSpace(c.Param("id"))
	if contactID == "" {
		return contact.Contact{}, echo.NewHTTPError(http.StatusBadRequest, "contact id is required")
	}
	for _, candidate := range h.store.GetContacts(c.Request().Context(), who.UserID, who.Email) {
		if candidate.ID == contactID {
			return candidate, nil
		}
	}
	return contact.Contact{}, echo.NewHTTPError(http.StatusNotFound, "contact not found")
}

// Suggestions returns the structured suggestion plan for one contact,
// labeled with its source (local model, cloud model, or offline rules).
func (h *SuggestionsHandler) Suggestions(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	friend, err := h.findContact(c, who)
	if err != nil {
		return err
	}
	p := h.store.GetProfile(c.Request().Context(), who.UserID, who.Email)
	suggestions, source := h.advisor.Suggest(c.Request().Context(), friend, p)
	return c.JSON(http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"source":      source,
	})
}

type adviceRequest struct {
	Query string `json:"query"`
}

// Advice answers a free-form question about one friendship.
func (h *SuggestionsHandler) Advice(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	friend, err := h.findContact(c, who)
	if err != nil {
		return err
	}
	var req adviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	p := h.store.GetProfile(c.Request().Context(), who.UserID, who.Email)
	advice := h.advisor.Advise(c.Request().Context(), friend, p, req.Query)
	return c.JSON(http.StatusOK, advice)
}
