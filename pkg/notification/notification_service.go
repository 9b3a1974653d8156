package notification

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// UserSource supplies the users that opted into notifications.
	// Satisfied by user.UserRepository.
	UserSource interface {
		GetNotifiableUsers(ctx context.Context) ([]*entities.User, error)
	}

	// ItemSource supplies a user's soon-to-expire items.
	// Satisfied by pantry.PantryService.
	ItemSource interface {
		GetItemsExpiringWithin(ctx context.Context, userID string, days int) ([]*entities.PantryItem, error)
	}

	Mailer interface {
		Send(to, subject, body string) error
	}

	SMSGateway interface {
		Send(ctx context.Context, phone, message string) error
	}

	NotificationService interface {
		// CheckAndNotify scans every notifiable user's expiring items and
		// dispatches alerts per channel preference. Dispatch failures are
		// logged per user and never abort the sweep.
		CheckAndNotify(ctx context.Context) error
		NotifyUser(ctx context.Context, user *entities.User, alerts []domain.ExpiryAlert)
	}

	notificationService struct {
		repository NotificationRepository
		users      UserSource
		items      ItemSource
		mailer     Mailer
		sms        SMSGateway
	}
)

func NewNotificationService(repository NotificationRepository, users UserSource, items ItemSource, mailer Mailer, sms SMSGateway) NotificationService {
	return &notificationService{
		repository: repository,
		users:      users,
		items:      items,
		mailer:     mailer,
		sms:        sms,
	}
}

func (s *notificationService) CheckAndNotify(ctx context.Context) error {
	users, err := s.users.GetNotifiableUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		leadDays := user.ExpiryLeadDays
		if leadDays <= 0 {
			leadDays = 3
		}

		items, err := s.items.GetItemsExpiringWithin(ctx, user.ID.String(), leadDays)
		if err != nil {
			log.Printf("failed to load expiring items for user %s: %v", user.ID, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		alerts := buildAlerts(items, time.Now())
		s.NotifyUser(ctx, user, alerts)
	}

	return nil
}

func (s *notificationService) NotifyUser(ctx context.Context, user *entities.User, alerts []domain.ExpiryAlert) {
	if len(alerts) == 0 {
		return
	}

	subject := fmt.Sprintf("%d pantry item(s) expiring soon", len(alerts))

	if user.NotifyByEmail && s.mailer != nil {
		body := emailBody(user.Name, alerts)
		err := s.mailer.Send(user.Email, subject, body)
		s.logAttempt(ctx, user.ID, domain.ChannelEmail, subject, body, alerts, err)
	}

	if user.NotifyBySMS && s.sms != nil {
		body := smsBody(alerts)
		var err error
		if user.Phone == "" {
			err = domain.ErrNoRecipientAddress
		} else {
			err = s.sms.Send(ctx, user.Phone, body)
		}
		s.logAttempt(ctx, user.ID, domain.ChannelSMS, subject, body, alerts, err)
	}
}

func (s *notificationService) logAttempt(ctx context.Context, userID uuid.UUID, channel, subject, body string, alerts []domain.ExpiryAlert, sendErr error) {
	status := domain.NotificationSent
	if sendErr != nil {
		status = domain.NotificationFailed
		log.Printf("failed to send %s notification to user %s: %v", channel, userID, sendErr)
	}

	var itemID *string
	if len(alerts) == 1 {
		itemID = &alerts[0].ItemID
	}

	entry := &entities.NotificationLog{
		ID:      uuid.New(),
		UserID:  userID,
		Channel: channel,
		Subject: subject,
		Body:    body,
		Status:  status,
		ItemID:  itemID,
		SentAt:  time.Now(),
	}
	if err := s.repository.CreateLog(ctx, entry); err != nil {
		log.Printf("failed to record notification log for user %s: %v", userID, err)
	}
}

func buildAlerts(items []*entities.PantryItem, now time.Time) []domain.ExpiryAlert {
	var alerts []domain.ExpiryAlert
	for _, item := range items {
		daysLeft := int(item.ExpiryDate.Sub(now).Hours() / 24)
		if daysLeft < 0 {
			daysLeft = 0
		}
		alerts = append(alerts, domain.ExpiryAlert{
			ItemID:     item.ID.String(),
			ItemName:   item.Name,
			ExpiryDate: item.ExpiryDate.Format("2006-01-02"),
			DaysLeft:   daysLeft,
		})
	}
	return alerts
}

func emailBody(name string, alerts []domain.ExpiryAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p><p>The following items in your pantry expire soon:</p><ul>", name)
	for _, alert := range alerts {
		fmt.Fprintf(&b, "<li>%s expires %s (%d day(s) left)</li>", alert.ItemName, alert.ExpiryDate, alert.DaysLeft)
	}
	b.WriteString("</ul><p>Use them before they go to waste!</p>")
	return b.String()
}

func smsBody(alerts []domain.ExpiryAlert) string {
	names := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		names = append(names, fmt.Sprintf("%s (%s)", alert.ItemName, alert.ExpiryDate))
	}
	return "Expiring soon: " + strings.Join(names, ", ")
}
