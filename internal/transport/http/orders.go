package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/danhtrongit/laca-pos/internal/app"
	"github.com/danhtrongit/laca-pos/internal/domain"
)

// Settler is the minimal interface needed to settle a sale.
type Settler interface {
	Settle(ctx context.Context, in app.SettleInput) (app.SettleResult, error)
}

// OrderLister is the minimal interface needed to list settled orders.
type OrderLister interface {
	ListOrders(ctx context.Context, in app.ListOrdersInput) (app.ListOrdersResult, error)
}

// HandleOrders routes POST (settle) and GET (history) on /api/orders.
func HandleOrders(settler Settler, lister OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handleSettle(settler, w, r)
		case http.MethodGet:
			handleListOrders(lister, w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func handleSettle(svc Settler, w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.PointsUsed < 0 {
		writeError(w, http.StatusBadRequest, codeInvalidPointsUsed, domain.ErrInvalidPointsUsed.Error())
		return
	}

	res, err := svc.Settle(r.Context(), app.SettleInput{
		CustomerID:     req.CustomerID,
		TotalAmount:    req.TotalAmount,
		DiscountAmount: req.DiscountAmount,
		PointsUsed:     req.PointsUsed,
		FinalAmount:    req.FinalAmount,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidAmount:
			writeError(w, http.StatusBadRequest, codeInvalidAmount, err.Error())
		case domain.ErrInsufficientPoints:
			writeError(w, http.StatusBadRequest, codeInsufficientPoints, err.Error())
		case domain.ErrCustomerNotFound:
			writeError(w, http.StatusNotFound, codeCustomerNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeStorageFailure, "internal error")
		}
		return
	}

	resp := settleResponse{Order: toOrderJSON(res.Order)}
	if res.Customer != nil {
		c := toCustomerJSON(*res.Customer)
		resp.Customer = &c
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func handleListOrders(svc OrderLister, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	res, err := svc.ListOrders(r.Context(), app.ListOrdersInput{
		Page:       page,
		Limit:      limit,
		CustomerID: q.Get("customerId"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeStorageFailure, "internal error")
		return
	}

	orders := make([]orderListItem, 0, len(res.Orders))
	for _, o := range res.Orders {
		orders = append(orders, orderListItem{
			orderJSON:    toOrderJSON(o.Order),
			CustomerName: o.CustomerName,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(listOrdersResponse{
		Total:       res.Total,
		TotalPages:  res.TotalPages,
		CurrentPage: res.Page,
		Orders:      orders,
	})
}

type settleRequest struct {
	CustomerID     string `json:"customerId"`
	TotalAmount    int64  `json:"totalAmount"`
	DiscountAmount int64  `json:"discountAmount"`
	PointsUsed     int    `json:"pointsUsed"`
	FinalAmount    int64  `json:"finalAmount"`
}

type settleResponse struct {
	Order    orderJSON     `json:"order"`
	Customer *customerJSON `json:"customer"`
}

type orderJSON struct {
	ID             int64     `json:"id"`
	CustomerID     string    `json:"customerId,omitempty"`
	TotalAmount    int64     `json:"totalAmount"`
	DiscountAmount int64     `json:"discountAmount"`
	PointsUsed     int       `json:"pointsUsed"`
	PointsEarned   int       `json:"pointsEarned"`
	FinalAmount    int64     `json:"finalAmount"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toOrderJSON(o domain.Order) orderJSON {
	return orderJSON{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		TotalAmount:    o.TotalAmount,
		DiscountAmount: o.DiscountAmount,
		PointsUsed:     o.PointsUsed,
		PointsEarned:   o.PointsEarned,
		FinalAmount:    o.FinalAmount,
		CreatedAt:      o.CreatedAt,
	}
}

type orderListItem struct {
	orderJSON
	CustomerName string `json:"customerName,omitempty"`
}

type listOrdersResponse struct {
	Total       int             `json:"total"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Orders      []orderListItem `json:"orders"`
}
