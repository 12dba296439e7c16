package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phoneflip/internal/phone"
)

func TestListPhones(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/phones", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"brand":"Acme","model":"X1","buy_price":100,"sell_price":null,"profit":null,"state":"bought","notes":""}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	phones, err := c.ListPhones(context.Background())
	require.NoError(t, err)
	require.Len(t, phones, 1)
	require.Equal(t, int64(1), phones[0].ID)
	require.Equal(t, "Acme", phones[0].Brand)
	require.Equal(t, phone.StateBought, phones[0].State)
	require.Nil(t, phones[0].SellPrice)
	require.Nil(t, phones[0].Profit)
}

func TestAddPhoneSendsJSONBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/phones", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got NewPhone
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, NewPhone{Brand: "Acme", Model: "X1", BuyPrice: 150, Notes: "mint"}, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"phone":{"id":7,"brand":"Acme","model":"X1","buy_price":150,"state":"bought"},"messages":[{"message":"Great deal!","type":"success"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	res, err := c.AddPhone(context.Background(), NewPhone{Brand: "Acme", Model: "X1", BuyPrice: 150, Notes: "mint"})
	require.NoError(t, err)
	require.Equal(t, int64(7), res.Phone.ID)
	require.Len(t, res.Messages, 1)
	require.Equal(t, "success", res.Messages[0].Type)
}

func TestUpdatePhoneStateOmitsAbsentSellPrice(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/phones/3/state", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		require.Equal(t, "scammed", raw["state"])
		_, hasPrice := raw["sell_price"]
		require.False(t, hasPrice, "sell_price must be omitted when not set")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"phone":{"id":3,"state":"scammed"},"messages":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	res, err := c.UpdatePhoneState(context.Background(), 3, StateChange{State: phone.StateScammed})
	require.NoError(t, err)
	require.Equal(t, phone.StateScammed, res.Phone.State)
}

func TestUpdatePhoneStateSendsSellPrice(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		require.Equal(t, "sold", raw["state"])
		require.InDelta(t, 199.99, raw["sell_price"], 0.0001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"phone":{"id":1,"state":"sold","sell_price":199.99,"profit":49.99},"messages":[]}`))
	}))
	defer srv.Close()

	price := 199.99
	c := New(srv.URL, 2*time.Second)
	res, err := c.UpdatePhoneState(context.Background(), 1, StateChange{State: phone.StateSold, SellPrice: &price})
	require.NoError(t, err)
	require.NotNil(t, res.Phone.Profit)
	require.InDelta(t, 49.99, *res.Phone.Profit, 0.0001)
}

func TestUpdateBudget(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/budget", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		require.InDelta(t, -250.0, raw["total_money"], 0.0001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_money":-250,"updated_at":"2026-01-01T00:00:00"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	budget, err := c.UpdateBudget(context.Background(), -250)
	require.NoError(t, err)
	require.InDelta(t, -250.0, budget.TotalMoney, 0.0001)
}

func TestDeletePhone(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Phone deleted successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	require.NoError(t, c.DeletePhone(context.Background(), 42))
	require.Equal(t, "/api/phones/42", gotPath)
}

func TestNonSuccessStatusIsStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	_, err := c.GetStats(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Status)
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.GetBudget(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Error(t, errors.Unwrap(transportErr))
}
