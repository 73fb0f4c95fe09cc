package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/schedule"
)

type ScheduleHandler struct {
	store     *hybrid.Reconciler
	scheduler *schedule.Service
}

func NewScheduleHandler(store *hybrid.Reconciler, scheduler *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{store: store, scheduler: scheduler}
}

func (h *ScheduleHandler) Register(e *echo.Echo) {
	e.GET("/users/me/actions", h.Actions)
	e.POST("/users/me/actions/schedule", h.Schedule)
	group := e.Group("/users/me/events")
	group.GET("", h.Events)
	group.DELETE("/:id", h.Remove)
	group.GET("/:id/ics", h.DownloadICS)
	group.POST("/:id/remind", h.Remind)
}

// Actions returns the suggested action plan, minus already scheduled
// actions.
func (h *ScheduleHandler) Actions(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	contacts := h.store.GetContacts(ctx, who.UserID, who.Email)
	actions := h.scheduler.Suggested(ctx, who.UserID, contacts)
	if actions == nil {
		actions = []contact.Action{}
	}
	return c.JSON(http.StatusOK, map[string]any{"actions": actions})
}

type scheduleRequest struct {
	Action contact.Action `json:"action"`
	Date   string         `json:"date"`
	Time   string         `json:"time"`
}

func (h *ScheduleHandler) Schedule(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	if strings.TrimSpace(req.Action.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "action title is required")
	}
	event, result, err := h.scheduler.Schedule(c.Request().Context(), who.UserID, req.Action, req.Date, req.Time)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{"event": event, "saveResult": result})
}

func (h *ScheduleHandler) Events(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	events := h.scheduler.Events(c.Request().Context(), who.UserID)
	if events == nil {
		events = []calendar.Event{}
	}
	return c.JSON(http.StatusOK, map[string]any{"events": events})
}

func (h *ScheduleHandler) Remove(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	eventID := strings.TrimSpace(c.Param("id"))
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}
	result, err := h.scheduler.Remove(c.Request().Context(), who.UserID, eventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"saveResult": result})
}

// DownloadICS renders one event as an iCalendar attachment.
func (h *ScheduleHandler) DownloadICS(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	eventID := strings.TrimSpace(c.Param("id"))
	for _, event := range h.scheduler.Events(c.Request().Context(), who.UserID) {
		if event.ID == eventID {
			c.Response().Header().Set(echo.HeaderContentDisposition,
				fmt.Sprintf(`attachment; filename=%q`, event.Filename()))
			return c.Blob(http.StatusOK, "text/calendar", []byte(event.ICS(time.Now())))
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "event not found")
}

type remindRequest struct {
	To string `json:"to"`
}

func (h *ScheduleHandler) Remind(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	eventID := strings.TrimSpace(c.Param("id"))
	var req remindRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	if strings.TrimSpace(req.To) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recipient is required")
	}
	for _, event := range h.scheduler.Events(c.Request().Context(), who.UserID) {
		if event.ID == eventID {
			if err := h.scheduler.Remind(c.Request().Context(), req.To, event); err != nil {
				return echo.NewHTTPError(http.StatusBadGateway, err.Error())
			}
			return c.JSON(http.StatusOK, map[string]any{"sent": true})
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "event not found")
}
