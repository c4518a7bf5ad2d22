package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aioseoassistant/SMSApp/internal/domain"
	"github.com/aioseoassistant/SMSApp/internal/repository/entity"
)

func newTestRepo(t *testing.T) *messageRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Message{}))

	return NewMessageRepository(db)
}

func strPtr(s string) *string { return &s }

func TestInsert_AssignsIDAndRoundTrips(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	record := domain.MessageRecord{
		Direction:         domain.DirectionOutbound,
		FromNumber:        "+15550001111",
		ToNumber:          "+15559876543",
		Body:              "hello",
		Status:            "queued",
		ProviderMessageID: strPtr("msg_abc"),
	}

	id, err := repo.Insert(ctx, &record)
	require.NoError(t, err)
	require.Positive(t, id)
	require.Equal(t, id, record.ID)
	require.False(t, record.CreatedAt.IsZero())

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, id, got[0].ID)
	require.Equal(t, domain.DirectionOutbound, got[0].Direction)
	require.Equal(t, "+15559876543", got[0].ToNumber)
	require.Equal(t, "hello", got[0].Body)
	require.Equal(t, "queued", got[0].Status)
	require.NotNil(t, got[0].ProviderMessageID)
	require.Equal(t, "msg_abc", *got[0].ProviderMessageID)
}

func TestInsert_RejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.Insert(context.Background(), &domain.MessageRecord{
		Direction: domain.DirectionOutbound,
	})
	require.Error(t, err)

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestUpdateStatus_NoMatchIsNoOp(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	record := domain.MessageRecord{
		Direction:         domain.DirectionOutbound,
		ToNumber:          "+15559876543",
		Status:            "queued",
		ProviderMessageID: strPtr("msg_1"),
	}
	_, err := repo.Insert(ctx, &record)
	require.NoError(t, err)

	affected, err := repo.UpdateStatus(ctx, "msg_unknown", "delivered")
	require.NoError(t, err)
	require.Zero(t, affected)

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "queued", got[0].Status)
}

func TestUpdateStatus_TargetsOnlyMatchingRecordAndIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	first := domain.MessageRecord{
		Direction:         domain.DirectionOutbound,
		ToNumber:          "+15550000001",
		Status:            "queued",
		ProviderMessageID: strPtr("msg_1"),
	}
	second := domain.MessageRecord{
		Direction:         domain.DirectionOutbound,
		ToNumber:          "+15550000002",
		Status:            "queued",
		ProviderMessageID: strPtr("msg_2"),
	}
	_, err := repo.Insert(ctx, &first)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &second)
	require.NoError(t, err)

	affected, err := repo.UpdateStatus(ctx, "msg_1", "delivered")
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	// Re-applying the same status leaves the final state unchanged.
	_, err = repo.UpdateStatus(ctx, "msg_1", "delivered")
	require.NoError(t, err)

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	byProvider := map[string]string{}
	for _, r := range got {
		byProvider[*r.ProviderMessageID] = r.Status
	}
	require.Equal(t, "delivered", byProvider["msg_1"])
	require.Equal(t, "queued", byProvider["msg_2"])
}

func TestListRecent_NewestFirstAndClamped(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 510; i++ {
		record := domain.MessageRecord{
			Direction: domain.DirectionInbound,
			ToNumber:  "+15559876543",
			Body:      fmt.Sprintf("msg %d", i),
			Status:    "received",
		}
		_, err := repo.Insert(ctx, &record)
		require.NoError(t, err)
	}

	got, err := repo.ListRecent(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, got, 500)

	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i-1].ID, got[i].ID)
	}

	// Non-positive limits fall back to the default page size.
	got, err = repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 50)
}
