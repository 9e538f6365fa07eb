package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Malshan20/studyforge/internal/config"
)

type EmailClient interface {
	SendOrderConfirmation(ctx context.Context, msg *OrderConfirmation) error
}

// OrderConfirmation carries everything the confirmation template needs.
// Amount is in minor units; the template renders it as decimal currency.
type OrderConfirmation struct {
	ToEmail     string
	ToName      string
	Subject     string
	OrderID     string
	OrderNumber string
	ProductName string
	Amount      int64
	Currency    string
}

type mailerSendClientImpl struct {
	httpClient   *http.Client
	baseApiURL   string
	apiKey       string
	fromEmail    string
	fromName     string
	replyTo      string
	downloadLink string
}

// NewMailerSendClient fails fast on missing credentials so a misconfigured
// deployment dies at startup instead of on the first customer email.
func NewMailerSendClient(mailCfg *config.MailerSend, downloadLink string) (EmailClient, error) {
	if mailCfg.APIKey == "" {
		return nil, fmt.Errorf("mailersend api key is not set")
	}
	if mailCfg.FromEmail == "" {
		return nil, fmt.Errorf("mailersend sender email is not set")
	}

	return &mailerSendClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:   mailCfg.BaseApiURL,
		apiKey:       mailCfg.APIKey,
		fromEmail:    mailCfg.FromEmail,
		fromName:     mailCfg.FromName,
		replyTo:      mailCfg.ReplyTo,
		downloadLink: downloadLink,
	}, nil
}

func (c *mailerSendClientImpl) SendOrderConfirmation(ctx context.Context, msg *OrderConfirmation) error {
	htmlContent, err := renderOrderConfirmationHTML(msg, c.downloadLink)
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	toName := msg.ToName
	if toName == "" {
		toName = "Valued Customer"
	}

	payload := map[string]interface{}{
		"from": map[string]string{
			"email": c.fromEmail,
			"name":  c.fromName,
		},
		"to": []map[string]string{
			{
				"email": msg.ToEmail,
				"name":  toName,
			},
		},
		"subject": msg.Subject,
		"html":    htmlContent,
		"reply_to": map[string]string{
			"email": c.replyTo,
			"name":  "StudyForge Support",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/email",
		bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailersend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailersend error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

type confirmationTemplateData struct {
	OrderID        string
	OrderNumber    string
	ProductName    string
	AmountDisplay  string
	CurrencyUpper  string
	DownloadLink   string
	RecipientEmail string
	Year           int
}

func renderOrderConfirmationHTML(msg *OrderConfirmation, downloadLink string) (string, error) {
	data := confirmationTemplateData{
		OrderID:        msg.OrderID,
		OrderNumber:    msg.OrderNumber,
		ProductName:    msg.ProductName,
		AmountDisplay:  decimal.New(msg.Amount, -2).StringFixed(2),
		CurrencyUpper:  strings.ToUpper(msg.Currency),
		DownloadLink:   downloadLink,
		RecipientEmail: msg.ToEmail,
		Year:           time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var confirmationTemplate = template.Must(template.New("order-confirmation").Parse(`
<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; background: #f9f9f9; }
    .header { background: linear-gradient(135deg, #1a1a1a 0%, #2d2d2d 100%); color: white; padding: 30px; text-align: center; font-weight: bold; font-size: 24px; }
    .content { background: white; padding: 30px; border: 2px solid #1a1a1a; }
    .order-info { background: #f0f0f0; padding: 20px; margin: 20px 0; border-left: 4px solid #1a1a1a; }
    .label { font-weight: bold; color: #1a1a1a; font-size: 12px; text-transform: uppercase; }
    .value { font-size: 16px; margin-bottom: 15px; }
    .cta-button {
      display: inline-block;
      background: #1a1a1a;
      color: white;
      padding: 14px 32px;
      text-decoration: none;
      font-weight: bold;
      margin: 20px 0;
      border: 2px solid #1a1a1a;
      cursor: pointer;
    }
    .cta-button:hover { background: white; color: #1a1a1a; }
    .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; border-top: 1px solid #ddd; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">STUDYFORGE</div>

    <div class="content">
      <h2 style="color: #1a1a1a; margin-top: 0;">ORDER CONFIRMATION</h2>

      <p>Thank you for your purchase! Your order has been successfully processed.</p>

      <div class="order-info">
        <div class="value">
          <div class="label">Order Number</div>
          <div>{{.OrderNumber}}</div>
        </div>

        <div class="value">
          <div class="label">Product</div>
          <div>{{.ProductName}}</div>
        </div>

        <div class="value">
          <div class="label">Amount Paid</div>
          <div>{{.CurrencyUpper}} ${{.AmountDisplay}}</div>
        </div>

        <div class="value">
          <div class="label">Order ID</div>
          <div style="font-family: monospace; font-size: 12px;">{{.OrderID}}</div>
        </div>
      </div>

      <h3 style="color: #1a1a1a;">DOWNLOAD YOUR DIGITAL PLANNER</h3>
      <p>Your digital study planner is ready to download. Click the button below to access your files:</p>

      <center>
        <a href="{{.DownloadLink}}" class="cta-button" target="_blank">DOWNLOAD NOW</a>
      </center>

      <h3 style="color: #1a1a1a;">WHAT'S INCLUDED</h3>
      <ul style="list-style: none; padding: 0;">
        <li>&#10003; 150+ Pages of Planning Templates</li>
        <li>&#10003; Weekly &amp; Monthly Planning Pages</li>
        <li>&#10003; Digital PDF Format (Print or Use Digitally)</li>
        <li>&#10003; Mobile &amp; Tablet Friendly</li>
        <li>&#10003; Assignment Tracking System</li>
        <li>&#10003; Academic Achievement Log</li>
      </ul>

      <h3 style="color: #1a1a1a;">NEED HELP?</h3>
      <p>If you have any questions or issues with your download, please contact us at support@studyforge.app</p>

      <p style="margin-top: 30px;">Happy studying!<br><strong>The StudyForge Team</strong></p>
    </div>

    <div class="footer">
      <p>&copy; {{.Year}} StudyForge. All rights reserved.</p>
      <p>This email was sent to {{.RecipientEmail}}</p>
    </div>
  </div>
</body>
</html>
`))
