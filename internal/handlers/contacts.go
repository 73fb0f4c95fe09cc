package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/hybrid"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/localstore"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/transfer"
)

type ContactsHandler struct {
	store *hybrid.Reconciler
	local *localstore.Store
}

func NewContactsHandler(store *hybrid.Reconciler, local *localstore.Store) *ContactsHandler {
	return &ContactsHandler{store: store, local: local}
}

func (h *ContactsHandler) Register(e *echo.Echo) {
	group := e.Group("/users/me/contacts")
	group.GET("", h.List)
	group.PUT("", h.Replace)
	group.POST("/import", h.Import)
	group.GET("/export", h.Export)
	group.GET("/:id/desires", h.GetDesires)
	group.PUT("/:id/desires", h.SaveDesires)
}

func (h *ContactsHandler) List(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	contacts := h.store.GetContacts(c.Request().Context(), who.UserID, who.Email)
	return c.JSON(http.StatusOK, map[string]any{"contacts": contacts})
}

// Replace swaps the full contact list. Ids must be unique; every record
// is normalized before persistence.
func (h *ContactsHandler) Replace(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	var incoming []contact.Contact
	if err := c.Bind(&incoming); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid contacts payload")
	}

	now := time.Now()
	seen := map[string]bool{}
	normalized := make([]contact.Contact, 0, len(incoming))
	for _, in := range incoming {
		n := contact.Normalize(in, now)
		if seen[n.ID] {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("duplicate contact id %q", n.ID))
		}
		seen[n.ID] = true
		normalized = append(normalized, n)
	}

	result := h.store.SaveContacts(c.Request().Context(), who.UserID, who.Email, normalized)
	if !result.Saved() {
		return echo.NewHTTPError(http.StatusInternalServerError, "contacts could not be persisted")
	}
	return c.JSON(http.StatusOK, map[string]any{"contacts": normalized, "saveResult": result})
}

// Import parses CSV or JSON by Content-Type and appends the imported
// records to the existing list. Existing ids are left untouched.
func (h *ContactsHandler) Import(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 10<<20))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read request body")
	}

	now := time.Now()
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	var imported []contact.Contact
	switch {
	case strings.Contains(contentType, "text/csv"):
		imported, err = transfer.ImportCSV(strings.NewReader(string(body)), now)
	case strings.Contains(contentType, echo.MIMEApplicationJSON):
		imported, err = transfer.ImportJSON(body, now)
	default:
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "use text/csv or application/json")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing := h.store.GetContacts(c.Request().Context(), who.UserID, who.Email)
	known := map[string]bool{}
	for _, e := range existing {
		known[e.ID] = true
	}
	added := 0
	merged := existing
	for _, in := range imported {
		if known[in.ID] {
			continue
		}
		known[in.ID] = true
		merged = append(merged, in)
		added++
	}

	result := h.store.SaveContacts(c.Request().Context(), who.UserID, who.Email, merged)
	if !result.Saved() {
		return echo.NewHTTPError(http.StatusInternalServerError, "contacts could not be persisted")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"imported":   added,
		"contacts":   merged,
		"saveResult": result,
	})
}

// Export returns the versioned envelope with the full data set.
func (h *ContactsHandler) Export(c echo.Context) error {
	who, err := requireCaller(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	contacts := h.store.GetContacts(ctx, who.UserID, who.Email)
	p := h.store.GetProfile(ctx, who.UserID, who.Email)
	return c.JSON(http.StatusOK, transfer.Export(contacts, p, time.Now()))
}

func (h *ContactsHandler) GetDesires(c echo.Context) error {
	if _, err := requireCaller(c); err != nil {
		return err
	}
	contactID := strings.TrimSpace(c.Param("id"))
	if contactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contact id is required")
	}
	d := h.local.ReadDesires(contactID)
	if d == nil {
		return c.JSON(http.StatusOK, map[string]any{"desires": contact.Desires{}, "stored": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"desires": d, "stored": true})
}

func (h *ContactsHandler) SaveDesires(c echo.Context) error {
	if _, err := requireCaller(c); err != nil {
		return err
	}
	contactID := strings.TrimSpace(c.Param("id"))
	if contactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contact id is required")
	}
	var d contact.Desires
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid desires payload")
	}
	if !h.local.WriteDesires(contactID, d) {
		return echo.NewHTTPError(http.StatusInternalServerError, "desires could not be persisted")
	}
	return c.JSON(http.StatusOK, map[string]any{"desires": d})
}
