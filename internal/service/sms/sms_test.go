package sms

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/aioseoassistant/SMSApp/internal/cache"
	"github.com/aioseoassistant/SMSApp/internal/config"
	"github.com/aioseoassistant/SMSApp/internal/domain"
	"github.com/aioseoassistant/SMSApp/internal/feed"
)

type fakeRepo struct {
	insertCalls int
	inserted    []domain.MessageRecord
	insertErr   error

	listCalls int
	lastLimit int
	listed    []domain.MessageRecord
}

func (f *fakeRepo) Insert(_ context.Context, record *domain.MessageRecord) (int64, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	record.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, *record)
	return record.ID, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]domain.MessageRecord, error) {
	f.listCalls++
	f.lastLimit = limit
	if limit < len(f.listed) {
		return f.listed[:limit], nil
	}
	return f.listed, nil
}

type fakeProvider struct {
	sendCalls int
	receipt   domain.SendReceipt
	err       error

	lastTo       string
	lastBody     string
	lastIdentity domain.SenderIdentity
}

func (f *fakeProvider) Send(_ context.Context, to, body string, identity domain.SenderIdentity) (domain.SendReceipt, error) {
	f.sendCalls++
	f.lastTo = to
	f.lastBody = body
	f.lastIdentity = identity
	if f.err != nil {
		return domain.SendReceipt{}, f.err
	}
	return f.receipt, nil
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return logger
}

func newTestService(repo *fakeRepo, prov *fakeProvider, carrier config.Carrier) *smsService {
	return NewSmsService(repo, prov, carrier, cache.Nop{}, feed.Nop{}, quietLogger())
}

func TestSend_HappyPathPersistsOutboundRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	prov := &fakeProvider{
		receipt: domain.SendReceipt{
			ProviderMessageID: "msg_abc",
			Status:            "queued",
			FromNumber:        "+15550001111",
			ToNumber:          "+15559876543",
		},
	}
	svc := newTestService(repo, prov, config.Carrier{MessagingProfileID: "profile-1"})

	result, err := svc.Send(context.Background(), "+15559876543", "hello")
	require.NoError(t, err)
	require.Equal(t, "msg_abc", result.ProviderMessageID)
	require.Equal(t, "queued", result.Status)

	require.Equal(t, 1, prov.sendCalls)
	require.Equal(t, "profile-1", prov.lastIdentity.MessagingProfileID)
	require.Empty(t, prov.lastIdentity.FromNumber)

	require.Len(t, repo.inserted, 1)
	record := repo.inserted[0]
	require.Equal(t, domain.DirectionOutbound, record.Direction)
	require.Equal(t, "+15550001111", record.FromNumber)
	require.Equal(t, "+15559876543", record.ToNumber)
	require.Equal(t, "hello", record.Body)
	require.Equal(t, "queued", record.Status)
	require.NotNil(t, record.ProviderMessageID)
	require.Equal(t, "msg_abc", *record.ProviderMessageID)
}

func TestSend_EmptyInputFailsFastWithoutSideEffects(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		to, body string
	}{
		{name: "empty to", to: "", body: "hello"},
		{name: "empty body", to: "+15559876543", body: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepo{}
			prov := &fakeProvider{}
			svc := newTestService(repo, prov, config.Carrier{FromNumber: "+15550001111"})

			_, err := svc.Send(context.Background(), tc.to, tc.body)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Zero(t, prov.sendCalls)
			require.Zero(t, repo.insertCalls)
		})
	}
}

func TestSend_SenderIdentityMustBeExactlyOne(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		carrier config.Carrier
	}{
		{name: "neither configured", carrier: config.Carrier{}},
		{name: "both configured", carrier: config.Carrier{
			MessagingProfileID: "profile-1",
			FromNumber:         "+15550001111",
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepo{}
			prov := &fakeProvider{}
			svc := newTestService(repo, prov, tc.carrier)

			_, err := svc.Send(context.Background(), "+15559876543", "hello")

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Zero(t, prov.sendCalls)
			require.Zero(t, repo.insertCalls)
		})
	}
}

func TestSend_GatewayFailureLeavesNoRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	prov := &fakeProvider{err: &domain.GatewayError{Detail: `{"errors":[]}`}}
	svc := newTestService(repo, prov, config.Carrier{FromNumber: "+15550001111"})

	_, err := svc.Send(context.Background(), "+15559876543", "hello")

	var gatewayErr *domain.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	require.Equal(t, 1, prov.sendCalls)
	require.Zero(t, repo.insertCalls)
}

func TestSend_FallsBackWhenCarrierOmitsFields(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	prov := &fakeProvider{receipt: domain.SendReceipt{}}
	svc := newTestService(repo, prov, config.Carrier{FromNumber: "+15550001111"})

	result, err := svc.Send(context.Background(), "+15559876543", "hello")
	require.NoError(t, err)
	require.Empty(t, result.ProviderMessageID)
	require.Equal(t, "queued", result.Status)

	require.Len(t, repo.inserted, 1)
	record := repo.inserted[0]
	require.Equal(t, "+15550001111", record.FromNumber)
	require.Equal(t, "+15559876543", record.ToNumber)
	require.Equal(t, "queued", record.Status)
	require.Nil(t, record.ProviderMessageID)
}

func TestSend_StorageFailureAfterCarrierAcceptIsSurfaced(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{insertErr: &domain.StorageError{Op: "insert", Err: context.DeadlineExceeded}}
	prov := &fakeProvider{receipt: domain.SendReceipt{ProviderMessageID: "msg_abc"}}
	svc := newTestService(repo, prov, config.Carrier{FromNumber: "+15550001111"})

	_, err := svc.Send(context.Background(), "+15559876543", "hello")

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, 1, prov.sendCalls)
	require.Equal(t, 1, repo.insertCalls)
}

func TestListRecent_ClampsLimit(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeProvider{}, config.Carrier{FromNumber: "+15550001111"})

	_, err := svc.ListRecent(context.Background(), 1000)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)
	require.Equal(t, 500, repo.lastLimit)

	_, err = svc.ListRecent(context.Background(), -3)
	require.NoError(t, err)
	require.Equal(t, 50, repo.lastLimit)
}
