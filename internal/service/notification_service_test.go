package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/events"
)

func TestNotificationHandleRoutesByType(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewNotificationService(zap.New(core), config.NotificationConfig{})
	ctx := context.Background()

	cases := []struct {
		eventType events.EventType
		message   string
	}{
		{events.EventEmployeePromoted, "EmployeePromoted"},
		{events.EventEmployeeDeleted, "EmployeeDeleted"},
		{events.EventSalaryChanged, "SalaryChanged"},
		{events.EventDepartmentDeleted, "DepartmentDeleted"},
	}
	for _, tc := range cases {
		require.NoError(t, svc.Handle(ctx, events.Event{Type: tc.eventType}))
		assert.Equal(t, 1, logs.FilterMessage(tc.message).Len(), tc.message)
	}
}

func TestNotificationHandleIgnoresUnknownType(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewNotificationService(zap.New(core), config.NotificationConfig{})

	require.NoError(t, svc.Handle(context.Background(), events.Event{Type: "unrelated"}))
	assert.Zero(t, logs.Len())
}

func TestNotificationStubsGatedOnConfig(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewNotificationService(zap.New(core), config.NotificationConfig{
		EmailFrom:  "hr@example.com",
		WebhookURL: "https://hooks.example.com/hr",
	})

	require.NoError(t, svc.Handle(context.Background(), events.Event{
		ID:   "evt-1",
		Type: events.EventEmployeePromoted,
	}))
	assert.Equal(t, 1, logs.FilterMessage("sendEmailNotificationStub").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
}
