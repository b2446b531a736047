package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidAmount      = "invalid_amount"
	codeInvalidPointsUsed  = "invalid_points_used"
	codeInsufficientPoints = "insufficient_points"
	codeCustomerNotFound   = "customer_not_found"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeStorageFailure     = "storage_failure"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"storage_failure"}`))
		return
	}
	_, _ = w.Write(payload)
}
