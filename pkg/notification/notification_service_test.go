package notification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepository struct {
	logs []*entities.NotificationLog
}

func (f *fakeNotificationRepository) CreateLog(_ context.Context, entry *entities.NotificationLog) error {
	f.logs = append(f.logs, entry)
	return nil
}

type fakeUserSource struct {
	users []*entities.User
}

func (f *fakeUserSource) GetNotifiableUsers(_ context.Context) ([]*entities.User, error) {
	return f.users, nil
}

type fakeItemSource struct {
	items   map[string][]*entities.PantryItem
	queried map[string]int
}

func (f *fakeItemSource) GetItemsExpiringWithin(_ context.Context, userID string, days int) ([]*entities.PantryItem, error) {
	if f.queried == nil {
		f.queried = make(map[string]int)
	}
	f.queried[userID] = days
	return f.items[userID], nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeSMSGateway struct {
	sent []string
	err  error
}

func (f *fakeSMSGateway) Send(_ context.Context, phone, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, phone)
	return nil
}

func expiringItem(userID uuid.UUID, name string, daysLeft int) *entities.PantryItem {
	return &entities.PantryItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		ExpiryDate: time.Now().AddDate(0, 0, daysLeft),
		Status:     entities.StatusWarning,
	}
}

func TestCheckAndNotifySendsEmail(t *testing.T) {
	repo := &fakeNotificationRepository{}
	mailer := &fakeMailer{}
	sms := &fakeSMSGateway{}
	user := &entities.User{
		ID:            uuid.New(),
		Name:          "Dina",
		Email:         "dina@example.com",
		NotifyByEmail: true,
	}
	items := &fakeItemSource{items: map[string][]*entities.PantryItem{
		user.ID.String(): {expiringItem(user.ID, "Yogurt", 2)},
	}}
	service := NewNotificationService(repo, &fakeUserSource{users: []*entities.User{user}}, items, mailer, sms)

	require.NoError(t, service.CheckAndNotify(context.Background()))

	assert.Equal(t, []string{"dina@example.com"}, mailer.sent)
	assert.Empty(t, sms.sent)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, domain.ChannelEmail, repo.logs[0].Channel)
	assert.Equal(t, domain.NotificationSent, repo.logs[0].Status)
	require.NotNil(t, repo.logs[0].ItemID)
}

func TestCheckAndNotifyUsesLeadDays(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "a@example.com", NotifyByEmail: true, ExpiryLeadDays: 7}
	items := &fakeItemSource{}
	service := NewNotificationService(&fakeNotificationRepository{}, &fakeUserSource{users: []*entities.User{user}}, items, &fakeMailer{}, nil)

	require.NoError(t, service.CheckAndNotify(context.Background()))
	assert.Equal(t, 7, items.queried[user.ID.String()])

	// zero lead days falls back to the default window
	noLead := &entities.User{ID: uuid.New(), Email: "b@example.com", NotifyByEmail: true}
	service = NewNotificationService(&fakeNotificationRepository{}, &fakeUserSource{users: []*entities.User{noLead}}, items, &fakeMailer{}, nil)
	require.NoError(t, service.CheckAndNotify(context.Background()))
	assert.Equal(t, 3, items.queried[noLead.ID.String()])
}

func TestCheckAndNotifySkipsUsersWithNothingExpiring(t *testing.T) {
	repo := &fakeNotificationRepository{}
	mailer := &fakeMailer{}
	user := &entities.User{ID: uuid.New(), Email: "idle@example.com", NotifyByEmail: true}
	service := NewNotificationService(repo, &fakeUserSource{users: []*entities.User{user}}, &fakeItemSource{}, mailer, nil)

	require.NoError(t, service.CheckAndNotify(context.Background()))
	assert.Empty(t, mailer.sent)
	assert.Empty(t, repo.logs)
}

func TestNotifyUserRespectsChannelPreferences(t *testing.T) {
	repo := &fakeNotificationRepository{}
	mailer := &fakeMailer{}
	sms := &fakeSMSGateway{}
	service := NewNotificationService(repo, &fakeUserSource{}, &fakeItemSource{}, mailer, sms)

	user := &entities.User{
		ID:            uuid.New(),
		Email:         "both@example.com",
		Phone:         "+628123456789",
		NotifyByEmail: true,
		NotifyBySMS:   true,
	}
	alerts := []domain.ExpiryAlert{{ItemID: uuid.NewString(), ItemName: "Milk", ExpiryDate: "2026-09-01", DaysLeft: 2}}

	service.NotifyUser(context.Background(), user, alerts)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"+628123456789"}, sms.sent)
	require.Len(t, repo.logs, 2)

	// each log entry records the body that went out on its channel
	assert.Equal(t, domain.ChannelEmail, repo.logs[0].Channel)
	assert.Contains(t, repo.logs[0].Body, "<ul>")
	assert.Equal(t, domain.ChannelSMS, repo.logs[1].Channel)
	assert.Contains(t, repo.logs[1].Body, "Expiring soon:")
	assert.NotContains(t, repo.logs[1].Body, "<ul>")

	emailOnly := &entities.User{ID: uuid.New(), Email: "mail@example.com", NotifyByEmail: true}
	service.NotifyUser(context.Background(), emailOnly, alerts)
	assert.Len(t, mailer.sent, 2)
	assert.Len(t, sms.sent, 1)
}

func TestNotifyUserLogsFailures(t *testing.T) {
	repo := &fakeNotificationRepository{}
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	service := NewNotificationService(repo, &fakeUserSource{}, &fakeItemSource{}, mailer, nil)

	user := &entities.User{ID: uuid.New(), Email: "down@example.com", NotifyByEmail: true}
	alerts := []domain.ExpiryAlert{{ItemID: uuid.NewString(), ItemName: "Eggs", ExpiryDate: "2026-09-01", DaysLeft: 1}}

	service.NotifyUser(context.Background(), user, alerts)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, domain.NotificationFailed, repo.logs[0].Status)
}

func TestNotifyUserSMSWithoutPhone(t *testing.T) {
	repo := &fakeNotificationRepository{}
	sms := &fakeSMSGateway{}
	service := NewNotificationService(repo, &fakeUserSource{}, &fakeItemSource{}, nil, sms)

	user := &entities.User{ID: uuid.New(), NotifyBySMS: true}
	alerts := []domain.ExpiryAlert{{ItemID: uuid.NewString(), ItemName: "Eggs", ExpiryDate: "2026-09-01", DaysLeft: 1}}

	service.NotifyUser(context.Background(), user, alerts)
	assert.Empty(t, sms.sent)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, domain.ChannelSMS, repo.logs[0].Channel)
	assert.Equal(t, domain.NotificationFailed, repo.logs[0].Status)
}

func TestNotifyUserNoAlertsIsNoOp(t *testing.T) {
	repo := &fakeNotificationRepository{}
	mailer := &fakeMailer{}
	service := NewNotificationService(repo, &fakeUserSource{}, &fakeItemSource{}, mailer, nil)

	user := &entities.User{ID: uuid.New(), Email: "quiet@example.com", NotifyByEmail: true}
	service.NotifyUser(context.Background(), user, nil)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, repo.logs)
}

func TestBuildAlerts(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	items := []*entities.PantryItem{
		expiringItem(userID, "Yogurt", 2),
		expiringItem(userID, "Spinach", 0),
	}

	alerts := buildAlerts(items, now)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Yogurt", alerts[0].ItemName)
	assert.GreaterOrEqual(t, alerts[0].DaysLeft, 1)
	assert.Equal(t, 0, alerts[1].DaysLeft, "days left never goes negative")
}
