package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/tracking-service/internal/config"
	"github.com/spec-kit/tracking-service/internal/events"
)

// AuditService records authentication and tracking activity emitted by the
// core services.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLogin)
	a.dispatcher.Subscribe(events.EventTrackingRequest, a.handleTracking)
	a.dispatcher.Subscribe(events.EventTrackingDenied, a.handleTracking)
	a.dispatcher.Subscribe(events.EventTrackingNotFound, a.handleTracking)
}

func (a *AuditService) handleLogin(ctx context.Context, event events.Event) error {
	a.logger.Info("LoginSucceeded",
		zap.String("subject_id", event.Actor.SubjectID),
		zap.String("role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	a.sendWebhookStub(ctx, event)
	return nil
}

func (a *AuditService) handleTracking(ctx context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("subject_id", event.Actor.SubjectID),
		zap.String("role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	if event.Type == events.EventTrackingDenied {
		a.sendWebhookStub(ctx, event)
	}
	return nil
}

func (a *AuditService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(a.cfg.WebhookURL) == "" {
		return
	}
	a.logger.Debug("sendWebhookStub",
		zap.String("url", a.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
