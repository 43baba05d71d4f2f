package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer delivers newsletters through the Resend API. Delivery is best
// effort: a failed recipient is counted and logged, never fatal.
type Mailer struct {
	apiKey string
	from   string
	logger *zap.Logger
}

func NewMailer(apiKey, from string, logger *zap.Logger) *Mailer {
	return &Mailer{apiKey: apiKey, from: from, logger: logger}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// SendResult counts delivery outcomes for one newsletter.
type SendResult struct {
	Sent   int
	Failed int
}

// Send mails the HTML digest to every recipient, one call per address.
// In test mode only the first recipient gets it.
func (m *Mailer) Send(ctx context.Context, subject, html string, recipients []string, testMode bool) SendResult {
	if testMode && len(recipients) > 1 {
		recipients = recipients[:1]
	}

	var result SendResult
	for _, recipient := range recipients {
		if err := m.sendOne(ctx, subject, html, recipient); err != nil {
			m.logger.Warn("newsletter delivery failed",
				zap.String("recipient", recipient), zap.Error(err))
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result
}

func (m *Mailer) sendOne(ctx context.Context, subject, html, recipient string) error {
	raw, err := json.Marshal(resendRequest{
		From:    m.from,
		To:      []string{recipient},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", resendEndpoint, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Resend API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody bytes.Buffer
		errBody.ReadFrom(resp.Body)
		return fmt.Errorf("Resend API error (status %d): %s", resp.StatusCode, errBody.String())
	}

	var parsed resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	m.logger.Debug("newsletter sent",
		zap.String("recipient", recipient), zap.String("message_id", parsed.ID))
	return nil
}
