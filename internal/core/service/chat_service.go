package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/metrics"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// ChatProxyService validates the inbound message and forwards it to
// the chat-completion provider. There is no conversation state.
type ChatProxyService struct {
	completer ports.ChatCompleter
	logger    zerolog.Logger
}

func NewChatProxyService(completer ports.ChatCompleter, logger zerolog.Logger) *ChatProxyService {
	return &ChatProxyService{completer: completer, logger: logger}
}

func (s *ChatProxyService) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", domain.ErrMissingFields
	}

	start := time.Now()
	reply, err := s.completer.Complete(ctx, message)
	metrics.ChatRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("chat completion failed")
		return "", err
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return reply, nil
}
