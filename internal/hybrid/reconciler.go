// Package hybrid reconciles the local and remote persistence tiers.
//
// Reads prefer the remote tier and fall back to local; writes go to the
// local tier first and then best-effort to the remote one. A remote
// failure never blocks a save: the outcome of both tiers is reported in
// a SaveResult instead.
package hybrid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/remotestore"
)

// RemoteStore is the remote tier surface the reconciler needs.
type RemoteStore interface {
	GetProfile(ctx context.Context, userID string) (*profile.Profile, error)
	SaveProfile(ctx context.Context, userID string, p profile.Profile) error
	GetContacts(ctx context.Context, userID string) ([]contact.Contact, error)
	SaveContacts(ctx context.Context, userID string, contacts []contact.Contact) error
	GetEvents(ctx context.Context, userID string) ([]calendar.Event, error)
	SaveEvents(ctx context.Context, userID string, events []calendar.Event) error
}

// LocalStore is the local tier surface the reconciler needs.
type LocalStore interface {
	ReadProfile(userID, email string) *profile.Profile
	WriteProfile(userID string, p profile.Profile) bool
	ReadContacts(userID, email string) []contact.Contact
	WriteContacts(userID, email string, contacts []contact.Contact) bool
	ReadEvents(userID string) []calendar.Event
	WriteEvents(userID string, events []calendar.Event) bool
}

// SaveResult reports per-tier persistence outcome for one save.
type SaveResult struct {
	Local  bool   `json:"localStorage"`
	Remote bool   `json:"supabase"`
	Error  string `json:"error,omitempty"`
}

// Saved reports whether at least one tier accepted the write.
func (r SaveResult) Saved() bool {
	return r.Local || r.Remote
}

type Reconciler struct {
	local  LocalStore
	remote RemoteStore
	log    *slog.Logger
}

func New(local LocalStore, remote RemoteStore, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		local:  local,
		remote: remote,
		log:    log.With(slog.String("component", "hybrid")),
	}
}

// GetProfile returns the remote profile when present, then the local
// one, then nil. A remote read that succeeds also refreshes the local
// tier so later offline reads see the same data.
func (r *Reconciler) GetProfile(ctx context.Context, userID, email string) *profile.Profile {
	remote, err := r.remote.GetProfile(ctx, userID)
	if err != nil {
		r.logRemoteError("get profile", err)
	} else if remote != nil {
		r.local.WriteProfile(userID, *remote)
		return remote
	}
	return r.local.ReadProfile(userID, email)
}

// SaveProfile writes local first, then remote. The local write is never
// rolled back when the remote one fails.
func (r *Reconciler) SaveProfile(ctx context.Context, userID string, p profile.Profile) SaveResult {
	result := SaveResult{Local: r.local.WriteProfile(userID, p)}
	if err := r.remote.SaveProfile(ctx, userID, p); err != nil {
		r.logRemoteError("save profile", err)
		if !errors.Is(err, remotestore.ErrNotConfigured) {
			result.Error = err.Error()
		}
	} else {
		result.Remote = true
	}
	return result
}

// GetContacts returns the remote list when it is non-empty, otherwise
// the local one, otherwise an empty slice. A non-empty remote read also
// refreshes the local tier.
func (r *Reconciler) GetContacts(ctx context.Context, userID, email string) []contact.Contact {
	remote, err := r.remote.GetContacts(ctx, userID)
	if err != nil {
		r.logRemoteError("get contacts", err)
	} else if len(remote) > 0 {
		r.local.WriteContacts(userID, email, remote)
		return remote
	}
	local := r.local.ReadContacts(userID, email)
	if local == nil {
		return []contact.Contact{}
	}
	return local
}

func (r *Reconciler) SaveContacts(ctx context.Context, userID, email string, contacts []contact.Contact) SaveResult {
	result := SaveResult{Local: r.local.WriteContacts(userID, email, contacts)}
	if err := r.remote.SaveContacts(ctx, userID, contacts); err != nil {
		r.logRemoteError("save contacts", err)
		if !errors.Is(err, remotestore.ErrNotConfigured) {
			result.Error = err.Error()
		}
	} else {
		result.Remote = true
	}
	return result
}

// GetEvents returns the remote calendar when it is non-empty, otherwise
// the local one.
func (r *Reconciler) GetEvents(ctx context.Context, userID string) []calendar.Event {
	remote, err := r.remote.GetEvents(ctx, userID)
	if err != nil {
		r.logRemoteError("get events", err)
	} else if len(remote) > 0 {
		r.local.WriteEvents(userID, remote)
		return remote
	}
	local := r.local.ReadEvents(userID)
	if local == nil {
		return []calendar.Event{}
	}
	return local
}

func (r *Reconciler) SaveEvents(ctx context.Context, userID string, events []calendar.Event) SaveResult {
	result := SaveResult{Local: r.local.WriteEvents(userID, events)}
	if err := r.remote.SaveEvents(ctx, userID, events); err != nil {
		r.logRemoteError("save events", err)
		if !errors.Is(err, remotestore.ErrNotConfigured) {
			result.Error = err.Error()
		}
	} else {
		result.Remote = true
	}
	return result
}

func (r *Reconciler) logRemoteError(op string, err error) {
	if errors.Is(err, remotestore.ErrNotConfigured) {
		r.log.Debug("remote tier disabled", slog.String("op", op))
		return
	}
	r.log.Warn("remote tier error", slog.String("op", op), slog.String("error", err.Error()))
}
