package chef

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/metrics"
)

// InventorySummarizer supplies the inventory context sent to the chef
type InventorySummarizer interface {
	Summary(ctx context.Context) (*domain.InventorySummary, error)
}

// Config holds the upstream chat API settings
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Reply is one answer from the chef
type Reply struct {
	Message   string `json:"message"`
	Model     string `json:"model,omitempty"`
	Fallback  bool   `json:"fallback,omitempty"`
	ItemCount int    `json:"item_count"`
}

// Service answers cooking questions with the current inventory as context
type Service interface {
	Ask(ctx context.Context, question string) (*Reply, error)
}

type service struct {
	cfg       Config
	client    *http.Client
	inventory InventorySummarizer
}

// NewService creates a new chef service. A nil client falls back to a
// default one with a bounded timeout.
func NewService(cfg Config, client *http.Client, inventory InventorySummarizer) Service {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &service{cfg: cfg, client: client, inventory: inventory}
}

// Upstream wire types (OpenAI-compatible chat completions)
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask builds an inventory-aware prompt and forwards the question
// upstream. Without an API key it degrades to a canned reply instead of
// failing.
func (s *service) Ask(ctx context.Context, question string) (*Reply, error) {
	log := logger.FromContext(ctx)

	summary, err := s.inventory.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory summary: %w", err)
	}

	if s.cfg.APIKey == "" {
		metrics.ChefRequests.WithLabelValues(metrics.OutcomeFallback).Inc()
		return &Reply{
			Message:   FallbackReply,
			Fallback:  true,
			ItemCount: summary.TotalItems,
		}, nil
	}

	payload := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: buildSystemPrompt(summary)},
			{Role: "user", Content: question},
		},
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + chatCompletionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ChefRequests.WithLabelValues(metrics.OutcomeUpstreamErr).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrChefUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ChefRequests.WithLabelValues(metrics.OutcomeUpstreamErr).Inc()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn("chef upstream returned error",
			"status", resp.StatusCode,
			"body", string(snippet))
		return nil, fmt.Errorf("%w: status %d", domain.ErrChefUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.ChefRequests.WithLabelValues(metrics.OutcomeUpstreamErr).Inc()
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrChefUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		metrics.ChefRequests.WithLabelValues(metrics.OutcomeUpstreamErr).Inc()
		return nil, fmt.Errorf("%w: empty response", domain.ErrChefUnavailable)
	}

	metrics.ChefRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	return &Reply{
		Message:   parsed.Choices[0].Message.Content,
		Model:     s.cfg.Model,
		ItemCount: summary.TotalItems,
	}, nil
}

// buildSystemPrompt renders the inventory as prompt context, expiring
// items first so the model prioritizes them.
func buildSystemPrompt(summary *domain.InventorySummary) string {
	var b strings.Builder
	b.WriteString(systemPromptHeader)

	if summary.TotalItems == 0 {
		b.WriteString("\n\nThe user's kitchen is currently empty.")
		return b.String()
	}

	if len(summary.ExpiringSoon) > 0 {
		b.WriteString("\n\nUse these up first (expiring soon):\n")
		for _, item := range summary.ExpiringSoon {
			b.WriteString(fmt.Sprintf("- %s (%s)", item.Name, item.Quantity))
			if item.DaysUntilExpiry != nil {
				b.WriteString(fmt.Sprintf(", %d day(s) left", *item.DaysUntilExpiry))
			}
			b.WriteString("\n")
		}
	}

	titler := cases.Title(language.English)
	for _, location := range []domain.Location{domain.LocationFridge, domain.LocationFreezer, domain.LocationPantry} {
		items := summary.ByLocation[location]
		if len(items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", titler.String(string(location))))
		for _, item := range items {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", item.Name, item.Quantity))
		}
	}

	return b.String()
}
