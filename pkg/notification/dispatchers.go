package notification

import (
	"Pantry-Backend/internal/utils"
	"Pantry-Backend/internal/utils/mailing"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type gomailMailer struct{}

// NewGomailMailer sends through the SMTP settings in config.yaml.
func NewGomailMailer() Mailer {
	return gomailMailer{}
}

func (gomailMailer) Send(to, subject, body string) error {
	return mailing.SendMail(to, subject, body)
}

type httpSMSGateway struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPSMSGateway posts messages to a generic SMS relay. Returns nil when
// no gateway URL is configured, which disables the SMS channel.
func NewHTTPSMSGateway() SMSGateway {
	url := utils.GetConfig("SMS_GATEWAY_URL")
	if url == "" {
		return nil
	}
	return &httpSMSGateway{
		url:    url,
		apiKey: utils.GetConfig("SMS_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *httpSMSGateway) Send(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      phone,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}
	return nil
}
