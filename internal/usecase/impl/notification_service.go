package impl

import (
	"context"
	"log/slog"
	"time"

	"workgroup/config"
	deliverycontext "workgroup/internal/delivery/context"
	"workgroup/internal/domain/constants"
	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/infra/metrics"
	"workgroup/internal/usecase"
	"workgroup/internal/util"

	"go.uber.org/fx"
)

// Delivery registration outcomes reported to metrics.
const (
	outcomeCreated   = "created"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
)

// notificationService ingests notifications and records deliveries.
type notificationService struct {
	groupRepo        repository.WorkingGroupRepository
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	membershipRepo   repository.MembershipRepository
	notificationRepo repository.NotificationRepository
	broadcaster      service.Broadcaster
	publisher        service.EventPublisher
	metrics          *metrics.Metrics
	maxPageSize      int
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	GroupRepo        repository.WorkingGroupRepository
	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	MembershipRepo   repository.MembershipRepository
	NotificationRepo repository.NotificationRepository
	Broadcaster      service.Broadcaster
	Publisher        service.EventPublisher
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	maxPageSize := constants.MaxPageSize
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.MaxPageSize > 0 {
		maxPageSize = params.Config.Notification.MaxPageSize
	}

	return &notificationService{
		groupRepo:        params.GroupRepo,
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		membershipRepo:   params.MembershipRepo,
		notificationRepo: params.NotificationRepo,
		broadcaster:      params.Broadcaster,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		maxPageSize:      maxPageSize,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitEvent stores a captured event under the caller's active tenant and fans it out.
func (srv *notificationService) SubmitEvent(
	ctx context.Context,
	principal entity.Principal,
	input *usecase.SubmitEventInput,
) (*entity.Notification, error) {
	tenantID, err := activeTenant(principal)
	if err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}
	if err := requireActiveGroup(ctx, srv.groupRepo, tenantID); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		WorkingGroupID:        tenantID,
		RawNotification:       input.RawNotification,
		Name:                  input.Name,
		Amount:                input.Amount,
		SecurityCode:          input.SecurityCode,
		Status:                entity.NotificationStatusReceived,
		NotificationTimestamp: input.NotificationTimestamp.UTC(),
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return nil, translate(err, "failed to store notification")
	}

	if srv.metrics != nil {
		srv.metrics.NotificationsIngestedTotal.Inc()
	}
	srv.log(ctx).Info("Notification ingested",
		slog.Int64("notificationID", notification.ID),
		slog.Int64("groupID", tenantID),
		slog.Int64("by", principal.UserID),
	)

	srv.fanOut(ctx, service.EventNotificationCreated, tenantID, notification)
	srv.mirror(ctx, service.EventNotificationCreated, notification)

	return notification, nil
}

// UpdateStatus sets the status of a notification in the caller's tenant. Re-applying the current status changes nothing.
func (srv *notificationService) UpdateStatus(
	ctx context.Context,
	principal entity.Principal,
	notificationID int64,
	status entity.NotificationStatus,
) (*entity.Notification, error) {
	notification, err := srv.findForMember(ctx, principal, notificationID)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be received or sent")
	}
	if notification.Status == status {
		return notification, nil
	}

	if err := srv.notificationRepo.UpdateStatus(ctx, notificationID, status); err != nil {
		return nil, translate(err, "failed to update notification status")
	}
	notification.Status = status

	srv.fanOut(ctx, service.EventNotificationStatusChanged, notification.WorkingGroupID, notification)
	srv.mirror(ctx, service.EventNotificationStatusChanged, notification)

	return notification, nil
}

// RegisterDelivery records that a notification reached a (device, user) pair.
// Uniqueness of the triple is left to the store so concurrent callers race on a single insert.
func (srv *notificationService) RegisterDelivery(
	ctx context.Context,
	principal entity.Principal,
	input *usecase.RegisterDeliveryInput,
) (*entity.DeliveryRecord, error) {
	notification, device, err := srv.resolveDeliveryTargets(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := srv.authorizeDelivery(ctx, principal, notification, device, input.UserID); err != nil {
		srv.countDelivery(outcomeRejected)

		return nil, err
	}

	record := &entity.DeliveryRecord{
		NotificationID: notification.ID,
		DeviceID:       device.ID,
		UserID:         input.UserID,
		IsActive:       true,
		SentAt:         srv.now().UTC(),
	}
	if err := srv.notificationRepo.CreateDeliveryRecord(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateDelivery) {
			srv.countDelivery(outcomeDuplicate)
			srv.log(ctx).Debug("Duplicate delivery refused",
				slog.Int64("notificationID", record.NotificationID),
				slog.Int64("deviceID", record.DeviceID),
				slog.Int64("userID", record.UserID),
			)
		}

		return nil, translate(err, "failed to register delivery")
	}

	srv.countDelivery(outcomeCreated)
	srv.fanOut(ctx, service.EventDeliveryRegistered, notification.WorkingGroupID, record)

	return record, nil
}

func (srv *notificationService) resolveDeliveryTargets(
	ctx context.Context,
	input *usecase.RegisterDeliveryInput,
) (*entity.Notification, *entity.Device, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, input.NotificationID)
	if err != nil {
		return nil, nil, translate(err, "failed to find notification")
	}

	device, err := srv.deviceRepo.FindByID(ctx, input.DeviceID)
	if err != nil {
		return nil, nil, translate(err, "failed to find device")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, nil, translate(err, "failed to find user")
	}

	return notification, device, nil
}

// authorizeDelivery requires the caller, the device and the user to share the notification's tenant.
func (srv *notificationService) authorizeDelivery(
	ctx context.Context,
	principal entity.Principal,
	notification *entity.Notification,
	device *entity.Device,
	userID int64,
) error {
	if err := requireTenantMember(principal, notification.WorkingGroupID); err != nil {
		return err
	}
	if device.WorkingGroupID != notification.WorkingGroupID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another working group")
	}

	membership, err := srv.membershipRepo.Find(ctx, notification.WorkingGroupID, userID)
	if err != nil {
		return translate(err, "user is not a member of the notification's working group")
	}
	if !membership.IsActive {
		return errors.Wrap(domainerrors.ErrForbidden, "user membership is inactive")
	}

	return nil
}

// GetNotification returns a notification of the caller's tenant.
func (srv *notificationService) GetNotification(ctx context.Context, principal entity.Principal, notificationID int64) (*entity.Notification, error) {
	return srv.findForMember(ctx, principal, notificationID)
}

// ListForGroup lists a tenant's notifications, newest first.
func (srv *notificationService) ListForGroup(
	ctx context.Context,
	principal entity.Principal,
	groupID int64,
	page usecase.Page,
) ([]*entity.Notification, error) {
	if err := requireTenantMember(principal, groupID); err != nil {
		return nil, err
	}

	skip, limit, err := util.NormalizePage(page.Skip, page.Limit, constants.DefaultPageSize, srv.maxPageSize)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	notifications, err := srv.notificationRepo.ListByGroup(ctx, groupID, skip, limit)
	if err != nil {
		return nil, translate(err, "failed to list notifications")
	}

	return notifications, nil
}

// ListDeliveries lists the delivery records of a notification.
func (srv *notificationService) ListDeliveries(ctx context.Context, principal entity.Principal, notificationID int64) ([]*entity.DeliveryRecord, error) {
	if _, err := srv.findForMember(ctx, principal, notificationID); err != nil {
		return nil, err
	}

	records, err := srv.notificationRepo.ListDeliveryRecords(ctx, notificationID)
	if err != nil {
		return nil, translate(err, "failed to list delivery records")
	}

	return records, nil
}

func (srv *notificationService) findForMember(ctx context.Context, principal entity.Principal, notificationID int64) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, translate(err, "failed to find notification")
	}
	if err := requireTenantMember(principal, notification.WorkingGroupID); err != nil {
		return nil, err
	}

	return notification, nil
}

// fanOut pushes an event to the tenant's live connections. Failures are logged only.
// The request context is detached: a client hanging up must not cut the broadcast short.
func (srv *notificationService) fanOut(ctx context.Context, eventType string, tenantID int64, data any) {
	result, err := srv.broadcaster.Publish(context.WithoutCancel(ctx), service.Event{
		Type:           eventType,
		WorkingGroupID: tenantID,
		Data:           data,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to broadcast event", slog.String("event", eventType), slog.Int64("tenant_id", tenantID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Debug("Event broadcast",
		slog.String("event", eventType),
		slog.Int64("tenant_id", tenantID),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)
}

// mirror publishes the notification to the external broker. Failures are logged only.
func (srv *notificationService) mirror(ctx context.Context, eventType string, notification *entity.Notification) {
	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Event:          eventType,
		NotificationID: notification.ID,
		WorkingGroupID: notification.WorkingGroupID,
		Name:           notification.Name,
		Amount:         notification.Amount,
		SecurityCode:   notification.SecurityCode,
		Status:         string(notification.Status),
		OccurredAt:     srv.now().UTC(),
	}
	if err := srv.publisher.PublishNotificationEvent(context.WithoutCancel(ctx), event); err != nil {
		if srv.metrics != nil {
			srv.metrics.EventPublishFailuresTotal.Inc()
		}
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.Int64("notificationID", notification.ID),
			slog.String("event", eventType),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) countDelivery(outcome string) {
	if srv.metrics != nil {
		srv.metrics.DeliveriesRegisteredTotal.WithLabelValues(outcome).Inc()
	}
}
