// Package advisor produces friendship advice from a language model. It
// prefers a local Ollama instance, falls back to an OpenAI-compatible
// API, and degrades to rule-based suggestions when neither is reachable.
package advisor

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/suggest"
)

// Advice sources, reported back to the caller so the UI can label the
// privacy level of a response.
const (
	SourceLocal   = "local"
	SourceCloud   = "cloud"
	SourceOffline = "offline-rules"
)

type Config struct {
	OllamaBaseURL string
	OllamaModel   string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
}

// Advice is one free-form model response.
type Advice struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Model   string `json:"model,omitempty"`
}

type Advisor struct {
	cfg    Config
	client *http.Client
	log    *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Advisor {
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "gpt-oss-20b"
	}
	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Advisor{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log.With(slog.String("component", "advisor")),
	}
}

// Advise answers a free-form question about one friendship. Local model
// first, then cloud, then a canned apology.
func (a *Advisor) Advise(ctx context.Context, friend contact.Contact, user *profile.Profile, query string) Advice {
	system := friendSystemPrompt(friend)

	if a.localAvailable(ctx) {
		content, err := a.ollamaChat(ctx, system, query)
		if err == nil {
			return Advice{Content: content, Source: SourceLocal, Model: a.cfg.OllamaModel}
		}
		a.log.Warn("local model failed", slog.String("error", err.Error()))
	}

	if a.cfg.OpenAIAPIKey != "" {
		content, err := a.openAIChat(ctx, system, query)
		if err == nil {
			return Advice{Content: content, Source: SourceCloud, Model: a.cfg.OpenAIModel}
		}
		a.log.Warn("cloud model failed", slog.String("error", err.Error()))
	}

	return Advice{
		Content: "AI services temporarily unavailable. Please try again later.",
		Source:  SourceOffline,
	}
}

// Suggest returns structured suggestions for one friendship. Model
// responses are parsed as JSON; anything else falls back to rule-based
// output so the caller always gets a usable plan.
func (a *Advisor) Suggest(ctx context.Context, friend contact.Contact, user *profile.Profile) (suggest.Suggestions, string) {
	prompt := suggestionPrompt(friend, user)
	system := coachSystemPrompt(user)

	if a.localAvailable(ctx) {
		if content, err := a.ollamaChat(ctx, system, prompt); err == nil {
			if s, ok := parseSuggestions(content); ok {
				return s, SourceLocal
			}
			return suggest.Fallback(), SourceLocal
		}
	}
	if a.cfg.OpenAIAPIKey != "" {
		if content, err := a.openAIChat(ctx, system, prompt); err == nil {
			if s, ok := parseSuggestions(content); ok {
				return s, SourceCloud
			}
			return suggest.Fallback(), SourceCloud
		}
	}
	return suggest.Offline(friend, user), SourceOffline
}

// NetworkInsights produces free-form strategic analysis of the whole
// contact set. Empty string when no model is reachable.
func (a *Advisor) NetworkInsights(ctx context.Context, contacts []contact.Contact, user *profile.Profile) (string, string) {
	system := networkSystemPrompt(contacts, user)
	query := "Analyze my relationship network and provide strategic insights."

	if a.localAvailable(ctx) {
		if content, err := a.ollamaChat(ctx, system, query); err == nil {
			return content, SourceLocal
		}
	}
	if a.cfg.OpenAIAPIKey != "" {
		if content, err := a.openAIChat(ctx, system, query); err == nil {
			return content, SourceCloud
		}
	}
	return "", SourceOffline
}

// localAvailable probes the Ollama tag list for the configured model
// family.
func (a *Advisor) localAvailable(ctx context.Context) bool {
	if a.cfg.OllamaBaseURL == "" {
		return false
	}
	tags, err := a.ollamaTags(ctx)
	if err != nil {
		return false
	}
	family := strings.SplitN(a.cfg.OllamaModel, ":", 2)[0]
	for _, name := range tags {
		if strings.Contains(name, family) {
			return true
		}
	}
	return false
}
