package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"mpv_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnRefPattern = regexp.MustCompile(`^TXN-\d+$`)

func TestCreatePayment(t *testing.T) {
	r, _, _ := newTestEnv(t)

	client := signup(t, r, `{"name":"Alice","email":"a@b.com","password":"pw"}`)

	w := doJSON(r, http.MethodPost, "/api/payments", client.Token, `{"amount":500,"type":"Deposit"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payment domain.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.Equal(t, "Completed", payment.Status)
	assert.Regexp(t, txnRefPattern, payment.TxnID)
	assert.Equal(t, client.User.ID, payment.UserID)
	assert.Equal(t, 500, payment.Amount)
	assert.Equal(t, "Deposit", payment.Type)
}

func TestCreatePaymentMissingFields(t *testing.T) {
	r, _, _ := newTestEnv(t)

	client := signup(t, r, `{"name":"Alice","email":"a@b.com","password":"pw"}`)

	w := doJSON(r, http.MethodPost, "/api/payments", client.Token, `{"amount":500}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPaymentsRequiresToken(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w := doJSON(r, http.MethodGet, "/api/payments", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPayments(t *testing.T) {
	r, _, mr := newTestEnv(t)

	client := signup(t, r, `{"name":"Alice","email":"a@b.com","password":"pw"}`)

	w := doJSON(r, http.MethodPost, "/api/payments", client.Token, `{"amount":500,"type":"Deposit"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/payments", client.Token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var payments []domain.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "Completed", payments[0].Status)

	// The listing is cached after the first read
	assert.True(t, mr.Exists(paymentsCacheKey))
}
