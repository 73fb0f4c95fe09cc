package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/advisor"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/insight"
)

type InsightsHandler struct {
	store   *hybrid.Reconciler
	advisor *advisor.Advisor
}

func NewInsightsHandler(store *hybrid.Reconciler, adv *advisor.Advisor) *InsightsHandler {
	return &InsightsHandler{store: store, advisor: adv}
}

func (h *InsightsHandler) Register(e *echo.Echo) {
	group := e.Group("/users/me/insights")
	group.GET("", h.Strategic)
	group.GET("/ai", h.AI)
}

// Strategic returns the rule-based portfolio insights and summary.
func (h *InsightsHandler) Strategic(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	contacts := h.store.GetContacts(c.Request().Context(), who.UserID, who.Email)
	return c.JSON(http.StatusOK, map[string]any{
		"insights": insight.Analyze(contacts),
		"analysis": insight.Summarize(contacts),
	})
}

// AI returns model-generated network analysis when a model is reachable.
func (h *InsightsHandler) AI(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	contacts := h.store.GetContacts(ctx, who.UserID, who.Email)
	p := h.store.GetProfile(ctx, who.UserID, who.Email)
	insights, source := h.advisor.NetworkInsights(ctx, contacts, p)
	if insights == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "no AI model reachable")
	}
	return c.JSON(http.StatusOK, map[string]any{"insights": insights, "source": source})
}
