package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danhtrongit/laca-pos/internal/domain"
)

// CustomerReader is the minimal interface needed to serve balance lookups.
type CustomerReader interface {
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// HandleListCustomers serves GET /api/customers.
func HandleListCustomers(svc CustomerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		customers, err := svc.ListCustomers(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeStorageFailure, "internal error")
			return
		}

		out := make([]customerJSON, 0, len(customers))
		for _, c := range customers {
			out = append(out, toCustomerJSON(c))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}

// HandleGetCustomer serves GET /api/customers/{id}.
func HandleGetCustomer(svc CustomerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseCustomerPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		customer, err := svc.GetCustomer(r.Context(), id)
		if err != nil {
			if err == domain.ErrCustomerNotFound {
				writeError(w, http.StatusNotFound, codeCustomerNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeStorageFailure, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(toCustomerJSON(customer))
	}
}

func parseCustomerPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "api" || parts[1] != "customers" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type customerJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	CurrentPoints int    `json:"currentPoints"`
	TotalPoints   int    `json:"totalPoints"`
}

func toCustomerJSON(c domain.Customer) customerJSON {
	return customerJSON{
		ID:            c.ID,
		Name:          c.Name,
		CurrentPoints: c.CurrentPoints,
		TotalPoints:   c.TotalPoints,
	}
}
