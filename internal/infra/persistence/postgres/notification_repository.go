package postgres

import (
	"context"

	"workgroup/internal/domain/entity"
	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/domain/repository"
	"workgroup/internal/errors"
	"workgroup/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)


// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification. The status defaults to received.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.Status == "" {
		notification.Status = entity.NotificationStatusReceived
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid working group reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID reads from the primary so a notification is visible right after ingestion.
func (repo *notificationRepository) FindByID(ctx context.Context, id int64) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListByGroup pages newest first, breaking ties on ID.
func (repo *notificationRepository) ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("working_group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by group")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

func (repo *notificationRepository) UpdateStatus(ctx context.Context, id int64, status entity.NotificationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

var deliveryDuplicates = map[string]error{deliveryTripleIndex: repository.ErrDuplicateDelivery}

// CreateDeliveryRecord is a single INSERT. idx_delivery_triple decides the winner of concurrent callers;
// every loser gets ErrDuplicateDelivery.
func (repo *notificationRepository) CreateDeliveryRecord(ctx context.Context, record *entity.DeliveryRecord) error {
	recordM := &model.DeliveryRecordModel{
		NotificationID: record.NotificationID,
		DeviceID:       record.DeviceID,
		UserID:         record.UserID,
		IsActive:       true,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if mapped, ok := uniqueViolation(err, deliveryDuplicates); ok {
			return mapped
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid notification, device or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery record")
	}

	record.ID = recordM.ID
	record.IsActive = recordM.IsActive
	record.SentAt = recordM.SentAt

	return nil
}

func (repo *notificationRepository) ListDeliveryRecords(ctx context.Context, notificationID int64) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("sent_at ASC, id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery records")
	}

	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, &entity.DeliveryRecord{
			ID:             recordM.ID,
			NotificationID: recordM.NotificationID,
			DeviceID:       recordM.DeviceID,
			UserID:         recordM.UserID,
			IsActive:       recordM.IsActive,
			SentAt:         recordM.SentAt,
		})
	}

	return records, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:                    data.ID,
		WorkingGroupID:        data.WorkingGroupID,
		RawNotification:       data.RawNotification,
		Name:                  data.Name,
		Amount:                data.Amount,
		SecurityCode:          data.SecurityCode,
		Status:                entity.NotificationStatus(data.Status),
		NotificationTimestamp: data.NotificationTimestamp,
		CreatedAt:             data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:                    data.ID,
		WorkingGroupID:        data.WorkingGroupID,
		RawNotification:       data.RawNotification,
		Name:                  data.Name,
		Amount:                data.Amount,
		SecurityCode:          data.SecurityCode,
		Status:                string(data.Status),
		NotificationTimestamp: data.NotificationTimestamp,
		CreatedAt:             data.CreatedAt,
	}
}
