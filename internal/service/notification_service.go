package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/events"
)

// NotificationService turns domain events into outbound notifications. The
// email and webhook senders are stubs gated on configuration.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		logger: logger,
		cfg:    cfg,
	}
}

// Handle routes an event to its notification handler. Unknown event types are
// ignored.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventEmployeePromoted:
		return n.handleEmployeePromoted(ctx, event)
	case events.EventEmployeeDeleted:
		return n.handleEmployeeDeleted(ctx, event)
	case events.EventSalaryChanged:
		return n.handleSalaryChanged(ctx, event)
	case events.EventDepartmentDeleted:
		return n.handleDepartmentDeleted(ctx, event)
	default:
		return nil
	}
}

func (n *NotificationService) handleEmployeePromoted(ctx context.Context, event events.Event) error {
	n.logger.Info("EmployeePromoted", zap.String("actor", event.Actor.Username), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleEmployeeDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("EmployeeDeleted", zap.String("actor", event.Actor.Username), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSalaryChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("SalaryChanged", zap.String("actor", event.Actor.Username), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDepartmentDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("DepartmentDeleted", zap.String("actor", event.Actor.Username), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID))
}
