package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/domain"
	"github.com/aioseoassistant/SMSApp/internal/repository/entity"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{db: db}
}

// Insert persists a new record and returns the store-assigned id. Direction
// and recipient are required; everything else may be empty.
func (mr *messageRepository) Insert(ctx context.Context, record *domain.MessageRecord) (int64, error) {
	if record.Direction == "" || record.ToNumber == "" {
		return 0, &domain.StorageError{
			Op:  "insert",
			Err: errors.New("message requires direction and to_number"),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, constant.DBWriteTimeout)
	defer cancel()

	e := entity.FromDomain(*record)
	if err := gorm.G[entity.Message](mr.db).Create(ctx, &e); err != nil {
		return 0, &domain.StorageError{Op: "insert", Err: err}
	}

	record.ID = e.Id
	record.CreatedAt = e.CreatedAt
	return e.Id, nil
}

// UpdateStatus sets the status on every record matching the provider message
// id and reports how many rows changed. Zero matches means the correlated
// record has not been seen yet and is not an error.
func (mr *messageRepository) UpdateStatus(ctx context.Context, providerMessageID, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.DBWriteTimeout)
	defer cancel()

	affected, err := gorm.G[entity.Message](mr.db).
		Where("provider_message_id = ?", providerMessageID).
		Update(ctx, "status", status)
	if err != nil {
		return 0, &domain.StorageError{Op: "update status", Err: err}
	}

	return int64(affected), nil
}

// ListRecent returns the newest records first. The limit is clamped to
// ListMaxLimit no matter what the caller asked for; non-positive values fall
// back to the default page size.
func (mr *messageRepository) ListRecent(ctx context.Context, limit int) ([]domain.MessageRecord, error) {
	if limit <= 0 {
		limit = constant.ListDefaultLimit
	}
	if limit > constant.ListMaxLimit {
		limit = constant.ListMaxLimit
	}

	rows, err := gorm.G[entity.Message](mr.db).
		Order("id DESC").
		Limit(limit).
		Find(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list recent", Err: err}
	}

	records := make([]domain.MessageRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToDomain())
	}

	return records, nil
}
