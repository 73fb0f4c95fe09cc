package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/mastermind"
)

type MastermindHandler struct {
	store   *hybrid.Reconciler
	service *mastermind.Service
}

func NewMastermindHandler(store *hybrid.Reconciler, service *mastermind.Service) *MastermindHandler {
	return &MastermindHandler{store: store, service: service}
}

func (h *MastermindHandler) Register(e *echo.Echo) {
	group := e.Group("/users/me/mastermind")
	group.GET("/potentials", h.Potentials)
	group.GET("/groups", h.Groups)
	group.POST("/groups", h.CreateGroup)
	group.POST("/name-suggestions", h.NameSuggestions)
}

func (h *MastermindHandler) Potentials(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	contacts := h.store.GetContacts(c.Request().Context(), who.UserID, who.Email)
	potentials := h.service.Potentials(contacts)
	if potentials == nil {
		potentials = []contact.Contact{}
	}
	return c.JSON(http.StatusOK, map[string]any{"potentials": potentials})
}

func (h *MastermindHandler) Groups(c echo.Context) error {
	if _, err := requireCaller(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"groups": h.service.List()})
}

type createGroupRequest struct {
	Name      string   `json:"name"`
	Purpose   string   `json:"purpose"`
	MemberIDs []string `json:"memberIds"`
}

func (h *MastermindHandler) CreateGroup(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	ctx := c.Request().Context()
	contacts := h.store.GetContacts(ctx, who.UserID, who.Email)
	creator := h.store.GetProfile(ctx, who.UserID, who.Email)

	group, err := h.service.Create(req.Name, req.Purpose, req.MemberIDs, contacts, creator)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, group)
}

type nameSuggestionsRequest struct {
	MemberIDs []string `json:"memberIds"`
}

func (h *MastermindHandler) NameSuggestions(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req nameSuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	byID := map[string]contact.Contact{}
	for _, in := range h.store.GetContacts(c.Request().Context(), who.UserID, who.Email) {
		byID[in.ID] = in
	}
	var members []contact.Contact
	for _, id := range req.MemberIDs {
		if m, ok := byID[id]; ok {
			members = append(members, m)
		}
	}
	names := mastermind.SuggestNames(members)
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"suggestions": names})
}
