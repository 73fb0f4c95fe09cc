package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/identity"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

type ProfileHandler struct {
	store *hybrid.Reconciler
}

func NewProfileHandler(store *hybrid.Reconciler) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) Register(e *echo.Echo) {
	group := e.Group("/users/me/profile")
	group.GET("", h.Get)
	group.PUT("", h.Save)
	group.POST("/setup", h.SetupStep)
	group.GET("/vocab", h.Vocab)
}

// Get returns the stored profile. First sign-ins get a synthesized
// default built from the token claims; it is not persisted until the
// user saves it.
func (h *ProfileHandler) Get(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	p := h.store.GetProfile(c.Request().Context(), who.UserID, who.Email)
	if p == nil {
		user := identity.User{ID: who.UserID, FullName: who.Name}
		if who.Email != "" {
			user.EmailAddresses = []identity.EmailAddress{{EmailAddress: who.Email, Primary: true}}
		}
		fresh := profile.Default(user, time.Now())
		return c.JSON(http.StatusOK, map[string]any{"profile": fresh, "persisted": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": p, "persisted": true})
}

func (h *ProfileHandler) Save(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var p profile.Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile payload")
	}
	if err := p.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ClerkUserID = who.UserID
	if strings.TrimSpace(p.Email) == "" {
		p.Email = who.Email
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.LastUpdated = time.Now().UTC()

	result := h.store.SaveProfile(c.Request().Context(), who.UserID, p)
	if !result.Saved() {
		return echo.NewHTTPError(http.StatusInternalServerError, "profile could not be persisted")
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": p, "saveResult": result})
}

type setupStepRequest struct {
	Op string `json:"op"`
}

// SetupStep drives the profile setup wizard: advance, back, complete or
// reopen.
func (h *ProfileHandler) SetupStep(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var req setupStepRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	p := h.store.GetProfile(c.Request().Context(), who.UserID, who.Email)
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no profile to update; save one first")
	}

	switch strings.ToLower(strings.TrimSpace(req.Op)) {
	case "advance":
		err = p.Advance()
	case "back":
		p.Back()
	case "complete":
		err = p.Complete()
	case "reopen":
		p.Reopen()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "op must be one of advance, back, complete, reopen")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p.LastUpdated = time.Now().UTC()
	result := h.store.SaveProfile(c.Request().Context(), who.UserID, *p)
	if !result.Saved() {
		return echo.NewHTTPError(http.StatusInternalServerError, "profile could not be persisted")
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": p, "saveResult": result})
}

// Vocab returns the option lists the setup wizard offers.
func (h *ProfileHandler) Vocab(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"personalityTypes":    profile.PersonalityTypes,
		"energyStyles":        profile.EnergyStyles,
		"givingStyles":        profile.GivingStyles,
		"communicationStyles": profile.CommunicationStyles,
		"strengths":           profile.Strengths,
		"businessAreas":       profile.BusinessAreas,
		"interests":           profile.Interests,
		"givingMethods":       profile.GivingMethods,
		"interactionTypes":    profile.InteractionTypes,
		"focusAreas":          profile.FocusAreas,
	})
}
