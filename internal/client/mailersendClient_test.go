package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malshan20/studyforge/internal/config"
)

func mailerConfig(baseURL string) *config.MailerSend {
	return &config.MailerSend{
		BaseApiURL: baseURL,
		APIKey:     "ms_test_key",
		FromEmail:  "orders@studyforge.app",
		FromName:   "StudyForge",
		ReplyTo:    "support@studyforge.app",
	}
}

func confirmationFixture() *OrderConfirmation {
	return &OrderConfirmation{
		ToEmail:     "a@x.com",
		Subject:     "Order Confirmation - Your StudyForge Purchase (ORD-1-ABCDEF)",
		OrderID:     "ORD-1-ABCDEFGHI",
		OrderNumber: "ORD-1-ABCDEF",
		ProductName: "Digital Study Planner & Journal",
		Amount:      200,
		Currency:    "usd",
	}
}

func TestNewMailerSendClient_MissingAPIKey(t *testing.T) {
	cfg := mailerConfig("http://localhost")
	cfg.APIKey = ""
	_, err := NewMailerSendClient(cfg, "https://drive.google.com/x")
	require.Error(t, err)
}

func TestNewMailerSendClient_MissingSender(t *testing.T) {
	cfg := mailerConfig("http://localhost")
	cfg.FromEmail = ""
	_, err := NewMailerSendClient(cfg, "https://drive.google.com/x")
	require.Error(t, err)
}

func TestSendOrderConfirmation_Payload(t *testing.T) {
	var gotAuth string
	var payload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/email", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer, err := NewMailerSendClient(mailerConfig(srv.URL), "https://drive.google.com/x")
	require.NoError(t, err)

	require.NoError(t, mailer.SendOrderConfirmation(context.Background(), confirmationFixture()))

	assert.Equal(t, "Bearer ms_test_key", gotAuth)

	from := payload["from"].(map[string]interface{})
	assert.Equal(t, "orders@studyforge.app", from["email"])

	to := payload["to"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "a@x.com", to["email"])
	assert.Equal(t, "Valued Customer", to["name"]) // no name given

	assert.Equal(t, "Order Confirmation - Your StudyForge Purchase (ORD-1-ABCDEF)", payload["subject"])

	html := payload["html"].(string)
	assert.Contains(t, html, "ORD-1-ABCDEF")
	assert.Contains(t, html, "Digital Study Planner &amp; Journal")
	assert.Contains(t, html, "USD $2.00")
	assert.Contains(t, html, "https://drive.google.com/x")
	assert.Contains(t, html, "a@x.com")
}

func TestSendOrderConfirmation_UsesRecipientName(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer, err := NewMailerSendClient(mailerConfig(srv.URL), "#")
	require.NoError(t, err)

	msg := confirmationFixture()
	msg.ToName = "Alex"
	require.NoError(t, mailer.SendOrderConfirmation(context.Background(), msg))

	to := payload["to"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Alex", to["name"])
}

func TestSendOrderConfirmation_ProviderErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The to.0.email must be a valid email address."}`))
	}))
	defer srv.Close()

	mailer, err := NewMailerSendClient(mailerConfig(srv.URL), "#")
	require.NoError(t, err)

	err = mailer.SendOrderConfirmation(context.Background(), confirmationFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "must be a valid email address")
}
