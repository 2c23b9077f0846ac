package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
	to     string
}

// NewResendClient creates a new Resend client. Returns nil when no API key
// is configured; contact notifications are then skipped.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, contact notifications disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@frametheory.studio" // Default from address
	}

	to := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if to == "" {
		to = "studio@frametheory.studio"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		to:     to,
	}
}

// ContactEmailData holds data for the contact notification email
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SendContactNotification emails the studio inbox about a new contact form
// submission. Best-effort: the contact record is already saved when this
// runs, so failures are logged and never surfaced to the visitor.
func (r *ResendClient) SendContactNotification(data ContactEmailData) error {
	htmlBody := r.buildContactHTML(data)

	payload := map[string]interface{}{
		"from":     r.from,
		"to":       r.to,
		"reply_to": data.Email,
		"subject":  fmt.Sprintf("New contact enquiry from %s", data.Name),
		"html":     htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] contact notification sent for %s", data.Email)
	return nil
}

// buildContactHTML creates the HTML body for the contact notification
func (r *ResendClient) buildContactHTML(data ContactEmailData) string {
	phone := data.Phone
	if phone == "" {
		phone = "—"
	}
	return fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>New contact enquiry</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
      <div style="font-size: 24px; font-weight: 700; margin-bottom: 40px;">Frame Theory</div>
      <p style="font-size: 28px; font-weight: 700; margin-bottom: 24px;">New contact enquiry</p>
      <div style="background: #f5f5f5; padding: 24px; margin: 24px 0;">
        <p style="margin: 0 0 8px 0;"><strong>Name:</strong> %s</p>
        <p style="margin: 0 0 8px 0;"><strong>Email:</strong> %s</p>
        <p style="margin: 0 0 8px 0;"><strong>Phone:</strong> %s</p>
      </div>
      <p style="font-size: 15px; color: #626262; white-space: pre-wrap;">%s</p>
    </div>
  </body>
</html>`,
		html.EscapeString(data.Name),
		html.EscapeString(data.Email),
		html.EscapeString(phone),
		html.EscapeString(data.Message))
}
