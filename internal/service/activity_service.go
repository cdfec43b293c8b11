package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/offerly/console/internal/events"
)

// ActivityService writes a structured log line for every console event.
type ActivityService struct {
	logger *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(logger *zap.Logger) *ActivityService {
	return &ActivityService{logger: logger}
}

// RegisterHandlers subscribes to the events of one session.
func (a *ActivityService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventNavigationCompleted, a.handleNavigationCompleted)
	dispatcher.Subscribe(events.EventMenuItemClicked, a.handleMenuItemClicked)
	dispatcher.Subscribe(events.EventOfferingRecorded, a.handleOfferingRecorded)
	dispatcher.Subscribe(events.EventLoginSubmitted, a.handleLoginSubmitted)
	dispatcher.Subscribe(events.EventLoginCompleted, a.handleLoginCompleted)
}

func (a *ActivityService) handleNavigationCompleted(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.NavigationCompletedPayload)
	a.logger.Debug("NavigationCompleted",
		zap.String("session_id", event.SessionID),
		zap.String("url", payload.URL))
	return nil
}

func (a *ActivityService) handleMenuItemClicked(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.MenuItemClickedPayload)
	a.logger.Debug("MenuItemClicked",
		zap.String("session_id", event.SessionID),
		zap.String("item_id", payload.Item.ID),
		zap.String("route", payload.Item.Route))
	return nil
}

func (a *ActivityService) handleOfferingRecorded(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.OfferingRecordedPayload)
	fields := []zap.Field{
		zap.String("session_id", event.SessionID),
		zap.String("record_id", payload.Record.ID),
		zap.String("type", string(payload.Record.Type)),
		zap.String("date", payload.Record.Date),
	}
	if payload.Record.Amount != nil {
		fields = append(fields, zap.Stringer("amount", payload.Record.Amount))
	}
	a.logger.Info("OfferingRecorded", fields...)
	return nil
}

func (a *ActivityService) handleLoginSubmitted(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.LoginSubmittedPayload)
	a.logger.Info("LoginSubmitted",
		zap.String("session_id", event.SessionID),
		zap.String("email", payload.Email),
		zap.Bool("remember_me", payload.RememberMe))
	return nil
}

func (a *ActivityService) handleLoginCompleted(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.LoginCompletedPayload)
	a.logger.Info("LoginCompleted",
		zap.String("session_id", event.SessionID),
		zap.String("email", payload.Email))
	return nil
}
