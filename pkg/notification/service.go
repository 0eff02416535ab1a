// Package notification tells users about changes to events they participate in. Notifications are
// delivered in the background so a failing delivery never fails the request that caused it.
package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/placelists/placelists/pkg/model"
)

// Sink receives batches of notifications. It is either the repository storing them right away or a
// [Publisher] queueing them for the [Consumer].
type Sink interface {
	Deliver(ctx context.Context, notifications []model.Notification) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, sink Sink, repository notificationRepository) *Service {
	return &Service{
		logger:     logger,
		sink:       sink,
		repository: repository,
	}
}

type notificationRepository interface {
	findAllByUser(ctx context.Context, userID uint) ([]model.Notification, error)
	markRead(ctx context.Context, id, userID uint) error
}

type Service struct {
	logger     *slog.Logger
	sink       Sink
	repository notificationRepository
	inFlight   sync.WaitGroup
}

// Notify hands the notifications to the sink in the background and returns right away. Delivery is
// attempted once. Failures are logged.
func (s *Service) Notify(ctx context.Context, notifications []model.Notification) {
	if len(notifications) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()

		if err := s.sink.Deliver(ctx, notifications); err != nil {
			s.logger.ErrorContext(ctx, "Failed to deliver notifications", "kind", notifications[0].Data.Name, "eventId", notifications[0].Data.EventID, "recipients", len(notifications), "error", err)
			return
		}
		s.logger.DebugContext(ctx, "Delivered notifications", "kind", notifications[0].Data.Name, "eventId", notifications[0].Data.EventID, "recipients", len(notifications))
	}()
}

// Wait blocks until all notifications handed to Notify have been delivered or failed.
func (s *Service) Wait() {
	s.inFlight.Wait()
}

// FindAll returns the notifications of the user, newest first.
func (s *Service) FindAll(ctx context.Context, userID uint) ([]model.Notification, error) {
	return s.repository.findAllByUser(ctx, userID)
}

// MarkRead marks a notification of the user as read.
func (s *Service) MarkRead(ctx context.Context, id, userID uint) error {
	return s.repository.markRead(ctx, id, userID)
}
