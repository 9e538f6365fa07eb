package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malshan20/studyforge/internal/config"
)

func newTestStripeClient(baseURL string) StripeClient {
	return NewStripeClient(&config.Stripe{
		BaseApiURL: baseURL,
		SecretKey:  "sk_test_123",
	})
}

func TestCreateCheckoutSession_SendsFormEncodedParams(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/pay/cs_test_1"}`))
	}))
	defer srv.Close()

	session, err := newTestStripeClient(srv.URL).CreateCheckoutSession(context.Background(), &CheckoutSessionParams{
		ProductID:   "digital-planner",
		ProductName: "Digital Study Planner & Journal",
		UnitAmount:  1599,
		Quantity:    1,
		Currency:    "usd",
		SuccessURL:  "http://localhost:8080/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost:8080/",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", session.URL)

	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "payment", gotForm["mode"][0])
	assert.Equal(t, "card", gotForm["payment_method_types[0]"][0])
	assert.Equal(t, "1599", gotForm["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "1", gotForm["line_items[0][quantity]"][0])
	assert.Equal(t, "usd", gotForm["line_items[0][price_data][currency]"][0])
	assert.Equal(t, "digital-planner", gotForm["metadata[productId]"][0])
	assert.Equal(t, "Digital Study Planner & Journal", gotForm["metadata[productName]"][0])
}

func TestCreateCheckoutSession_GatewayErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid currency"}}`))
	}))
	defer srv.Close()

	_, err := newTestStripeClient(srv.URL).CreateCheckoutSession(context.Background(), &CheckoutSessionParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid currency")
}

func TestGetCheckoutSession_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_test_1",
			"payment_status": "paid",
			"payment_intent": "pi_test_1",
			"amount_total": 200,
			"currency": "usd",
			"metadata": {"productId": "digital-planner"},
			"customer_details": {"email": "a@x.com", "name": "Alex"}
		}`))
	}))
	defer srv.Close()

	session, err := newTestStripeClient(srv.URL).GetCheckoutSession(context.Background(), "cs_test_1")
	require.NoError(t, err)

	assert.Equal(t, "paid", session.PaymentStatus)
	assert.Equal(t, "pi_test_1", session.PaymentIntent)
	assert.Equal(t, int64(200), session.AmountTotal)
	assert.Equal(t, "usd", session.Currency)
	assert.Equal(t, "digital-planner", session.Metadata["productId"])
	require.NotNil(t, session.CustomerDetails)
	assert.Equal(t, "Alex", session.CustomerDetails.Name)
}

func TestGetCheckoutSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStripeClient(srv.URL).GetCheckoutSession(context.Background(), "cs_missing")
	require.ErrorIs(t, err, ErrStripeNotFound)
}

func TestGetPaymentIntent_ParsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents/pi_test_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_test_1","status":"succeeded"}`))
	}))
	defer srv.Close()

	intent, err := newTestStripeClient(srv.URL).GetPaymentIntent(context.Background(), "pi_test_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
}
