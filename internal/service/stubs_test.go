package service

import (
	"context"
	"testing"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the repository interfaces. Each noop constructor
// returns a stub where every call succeeds with zero values; tests override
// just the calls they care about.

type userRepoStub struct {
	getByIDFn         func(context.Context, string) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByArtistNameFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, string, map[string]any) error
	deleteFn          func(context.Context, string) error
	listFn            func(context.Context, int, int) ([]models.User, error)
	listByIDsFn       func(context.Context, []string) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByArtistName(ctx context.Context, name string) (*models.User, error) {
	return s.getByArtistNameFn(ctx, name)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.updateFn(ctx, id, fields)
}
func (s *userRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	return s.listByIDsFn(ctx, ids)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn:      func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByArtistNameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		updateFn:          func(_ context.Context, _ string, _ map[string]any) error { return nil },
		deleteFn:          func(_ context.Context, _ string) error { return nil },
		listFn:            func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		listByIDsFn:       func(_ context.Context, _ []string) ([]models.User, error) { return nil, nil },
	}
}

type checkInRepoStub struct {
	getByIDFn            func(context.Context, string) (*models.CheckIn, error)
	createFn             func(context.Context, *models.CheckIn) error
	updateFn             func(context.Context, string, map[string]any) error
	deleteFn             func(context.Context, string) error
	findByUserAndEventFn func(context.Context, string, string) (*models.CheckIn, error)
	listByEventFn        func(context.Context, string) ([]models.CheckIn, error)
	listByUserFn         func(context.Context, string) ([]models.CheckIn, error)
}

func (s *checkInRepoStub) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.CheckIn, error) {
	return s.findByUserAndEventFn(ctx, userID, eventID)
}

func (s *checkInRepoStub) GetByID(ctx context.Context, id string) (*models.CheckIn, error) {
	return s.getByIDFn(ctx, id)
}
func (s *checkInRepoStub) Create(ctx context.Context, checkIn *models.CheckIn) error {
	return s.createFn(ctx, checkIn)
}
func (s *checkInRepoStub) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.updateFn(ctx, id, fields)
}
func (s *checkInRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *checkInRepoStub) ListByEvent(ctx context.Context, eventID string) ([]models.CheckIn, error) {
	return s.listByEventFn(ctx, eventID)
}
func (s *checkInRepoStub) ListByUser(ctx context.Context, userID string) ([]models.CheckIn, error) {
	return s.listByUserFn(ctx, userID)
}

func noopCheckInRepo() *checkInRepoStub {
	return &checkInRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.CheckIn, error) {
			return &models.CheckIn{ID: id}, nil
		},
		createFn:             func(_ context.Context, _ *models.CheckIn) error { return nil },
		updateFn:             func(_ context.Context, _ string, _ map[string]any) error { return nil },
		deleteFn:             func(_ context.Context, _ string) error { return nil },
		findByUserAndEventFn: func(_ context.Context, _, _ string) (*models.CheckIn, error) { return nil, nil },
		listByEventFn:        func(_ context.Context, _ string) ([]models.CheckIn, error) { return nil, nil },
		listByUserFn:         func(_ context.Context, _ string) ([]models.CheckIn, error) { return nil, nil },
	}
}

type eventRepoStub struct {
	getByIDFn   func(context.Context, string) (*models.Event, error)
	getByQRIDFn func(context.Context, string) (*models.Event, error)
	createFn    func(context.Context, *models.Event) error
	updateFn    func(context.Context, string, map[string]any) error
	deleteFn    func(context.Context, string) error
	listFn      func(context.Context) ([]models.Event, error)
	listActiveFn func(context.Context) ([]models.Event, error)
	incrementFn func(context.Context, string) error
}

func (s *eventRepoStub) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) GetByQRID(ctx context.Context, qrID string) (*models.Event, error) {
	return s.getByQRIDFn(ctx, qrID)
}
func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}
func (s *eventRepoStub) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.updateFn(ctx, id, fields)
}
func (s *eventRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *eventRepoStub) List(ctx context.Context) ([]models.Event, error) {
	return s.listFn(ctx)
}
func (s *eventRepoStub) ListActive(ctx context.Context) ([]models.Event, error) {
	return s.listActiveFn(ctx)
}
func (s *eventRepoStub) IncrementCheckedIn(ctx context.Context, id string) error {
	return s.incrementFn(ctx, id)
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.Event, error) {
			return &models.Event{ID: id, Status: models.EventScheduled}, nil
		},
		getByQRIDFn:  func(_ context.Context, _ string) (*models.Event, error) { return &models.Event{}, nil },
		createFn:     func(_ context.Context, _ *models.Event) error { return nil },
		updateFn:     func(_ context.Context, _ string, _ map[string]any) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		listFn:       func(_ context.Context) ([]models.Event, error) { return nil, nil },
		listActiveFn: func(_ context.Context) ([]models.Event, error) { return nil, nil },
		incrementFn:  func(_ context.Context, _ string) error { return nil },
	}
}

type messageRepoStub struct {
	getByIDFn              func(context.Context, string) (*models.Message, error)
	createFn               func(context.Context, *models.Message) error
	listInvolvingFn        func(context.Context, string) ([]models.Message, error)
	markReadFn             func(context.Context, string, string) error
	markConversationReadFn func(context.Context, string, string) error
}

func (s *messageRepoStub) GetByID(ctx context.Context, id string) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) ListInvolving(ctx context.Context, userID string) ([]models.Message, error) {
	return s.listInvolvingFn(ctx, userID)
}
func (s *messageRepoStub) MarkRead(ctx context.Context, id, receiverID string) error {
	return s.markReadFn(ctx, id, receiverID)
}
func (s *messageRepoStub) MarkConversationRead(ctx context.Context, userID, counterpartID string) error {
	return s.markConversationReadFn(ctx, userID, counterpartID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		getByIDFn:              func(_ context.Context, id string) (*models.Message, error) { return &models.Message{ID: id}, nil },
		createFn:               func(_ context.Context, _ *models.Message) error { return nil },
		listInvolvingFn:        func(_ context.Context, _ string) ([]models.Message, error) { return nil, nil },
		markReadFn:             func(_ context.Context, _, _ string) error { return nil },
		markConversationReadFn: func(_ context.Context, _, _ string) error { return nil },
	}
}

type notificationRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	listByUserFn  func(context.Context, string, int) ([]models.Notification, error)
	countUnreadFn func(context.Context, string) (int64, error)
	markReadFn    func(context.Context, string, string) error
	markAllReadFn func(context.Context, string) error
	deleteFn      func(context.Context, string, string) error
}

func (s *notificationRepoStub) Create(ctx context.Context, notification *models.Notification) error {
	return s.createFn(ctx, notification)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return s.listByUserFn(ctx, userID, limit)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id, userID string) error {
	return s.markReadFn(ctx, id, userID)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID string) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:      func(_ context.Context, _ *models.Notification) error { return nil },
		listByUserFn:  func(_ context.Context, _ string, _ int) ([]models.Notification, error) { return nil, nil },
		countUnreadFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
		markReadFn:    func(_ context.Context, _, _ string) error { return nil },
		markAllReadFn: func(_ context.Context, _ string) error { return nil },
		deleteFn:      func(_ context.Context, _, _ string) error { return nil },
	}
}

type platformRepoStub struct {
	getByIDFn func(context.Context, string) (*models.Platform, error)
	createFn  func(context.Context, *models.Platform) error
	upsertFn  func(context.Context, *models.Platform) error
	updateFn  func(context.Context, string, map[string]any) error
	deleteFn  func(context.Context, string) error
	listFn    func(context.Context) ([]models.Platform, error)
}

func (s *platformRepoStub) GetByID(ctx context.Context, id string) (*models.Platform, error) {
	return s.getByIDFn(ctx, id)
}
func (s *platformRepoStub) Create(ctx context.Context, platform *models.Platform) error {
	return s.createFn(ctx, platform)
}
func (s *platformRepoStub) Upsert(ctx context.Context, platform *models.Platform) error {
	return s.upsertFn(ctx, platform)
}
func (s *platformRepoStub) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.updateFn(ctx, id, fields)
}
func (s *platformRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *platformRepoStub) List(ctx context.Context) ([]models.Platform, error) {
	return s.listFn(ctx)
}

func noopPlatformRepo() *platformRepoStub {
	return &platformRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.Platform, error) {
			return &models.Platform{ID: id}, nil
		},
		createFn: func(_ context.Context, _ *models.Platform) error { return nil },
		upsertFn: func(_ context.Context, _ *models.Platform) error { return nil },
		updateFn: func(_ context.Context, _ string, _ map[string]any) error { return nil },
		deleteFn: func(_ context.Context, _ string) error { return nil },
		listFn:   func(_ context.Context) ([]models.Platform, error) { return nil, nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
