package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danhtrongit/laca-pos/internal/app"
	"github.com/danhtrongit/laca-pos/internal/domain"
)

func TestHandleOrders_Settle(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	post := func(t *testing.T, settler Settler, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		HandleOrders(settler, &fakeLister{}).ServeHTTP(rec, req)
		return rec
	}

	t.Run("settles and returns order with customer", func(t *testing.T) {
		settler := &fakeSettler{
			result: app.SettleResult{
				Order: domain.Order{
					ID: 7, CustomerID: "0900000000", TotalAmount: 100000,
					PointsEarned: 10, FinalAmount: 100000, CreatedAt: now,
				},
				Customer: &domain.Customer{ID: "0900000000", CurrentPoints: 10, TotalPoints: 10},
			},
		}

		rec := post(t, settler, `{"customerId":"0900000000","totalAmount":100000,"discountAmount":0,"pointsUsed":0,"finalAmount":100000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if settler.lastInput.CustomerID != "0900000000" || settler.lastInput.FinalAmount != 100000 {
			t.Fatalf("unexpected input: %+v", settler.lastInput)
		}

		var resp settleResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Order.ID != 7 || resp.Order.PointsEarned != 10 {
			t.Fatalf("unexpected order: %+v", resp.Order)
		}
		if resp.Customer == nil || resp.Customer.CurrentPoints != 10 {
			t.Fatalf("unexpected customer: %+v", resp.Customer)
		}
	})

	t.Run("walk-in settle returns null customer", func(t *testing.T) {
		settler := &fakeSettler{
			result: app.SettleResult{
				Order: domain.Order{ID: 8, TotalAmount: 5000, FinalAmount: 5000, CreatedAt: now},
			},
		}

		rec := post(t, settler, `{"totalAmount":5000,"discountAmount":0,"pointsUsed":0,"finalAmount":5000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp settleResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Customer != nil {
			t.Fatalf("expected null customer, got %+v", resp.Customer)
		}
	})

	t.Run("maps domain errors to statuses", func(t *testing.T) {
		for _, tc := range []struct {
			err    error
			status int
			code   string
		}{
			{domain.ErrInvalidAmount, http.StatusBadRequest, codeInvalidAmount},
			{domain.ErrInsufficientPoints, http.StatusBadRequest, codeInsufficientPoints},
			{domain.ErrCustomerNotFound, http.StatusNotFound, codeCustomerNotFound},
			{errors.New("pool timeout"), http.StatusInternalServerError, codeStorageFailure},
		} {
			rec := post(t, &fakeSettler{err: tc.err}, `{"finalAmount":1}`)
			if rec.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Code != tc.code {
				t.Fatalf("%v: expected code %s, got %s", tc.err, tc.code, resp.Code)
			}
		}
	})

	t.Run("rejects malformed body without calling service", func(t *testing.T) {
		settler := &fakeSettler{}
		rec := post(t, settler, `{"finalAmount":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if settler.calls != 0 {
			t.Fatalf("expected service untouched, got %d calls", settler.calls)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		rec := post(t, &fakeSettler{}, `{"finalAmount":1,"pointsEarned":999}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects negative points used", func(t *testing.T) {
		settler := &fakeSettler{}
		rec := post(t, settler, `{"finalAmount":1000,"pointsUsed":-5}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if settler.calls != 0 {
			t.Fatalf("expected service untouched, got %d calls", settler.calls)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/orders", nil)
		rec := httptest.NewRecorder()
		HandleOrders(&fakeSettler{}, &fakeLister{}).ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
	})
}

func TestHandleOrders_List(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	lister := &fakeLister{
		result: app.ListOrdersResult{
			Total:      12,
			TotalPages: 2,
			Page:       2,
			Orders: []app.OrderWithCustomer{
				{
					Order:        domain.Order{ID: 3, CustomerID: "0900000000", FinalAmount: 1000, CreatedAt: now},
					CustomerName: "An",
				},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=2&limit=10&customerId=0900000000", nil)
	rec := httptest.NewRecorder()
	HandleOrders(&fakeSettler{}, lister).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if lister.lastInput.Page != 2 || lister.lastInput.Limit != 10 || lister.lastInput.CustomerID != "0900000000" {
		t.Fatalf("unexpected input: %+v", lister.lastInput)
	}

	var resp listOrdersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 12 || resp.TotalPages != 2 || resp.CurrentPage != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].CustomerName != "An" {
		t.Fatalf("unexpected orders: %+v", resp.Orders)
	}
}

type fakeSettler struct {
	result    app.SettleResult
	err       error
	calls     int
	lastInput app.SettleInput
}

func (f *fakeSettler) Settle(_ context.Context, in app.SettleInput) (app.SettleResult, error) {
	f.calls++
	f.lastInput = in
	if f.err != nil {
		return app.SettleResult{}, f.err
	}
	return f.result, nil
}

type fakeLister struct {
	result    app.ListOrdersResult
	err       error
	lastInput app.ListOrdersInput
}

func (f *fakeLister) ListOrders(_ context.Context, in app.ListOrdersInput) (app.ListOrdersResult, error) {
	f.lastInput = in
	if f.err != nil {
		return app.ListOrdersResult{}, f.err
	}
	return f.result, nil
}
