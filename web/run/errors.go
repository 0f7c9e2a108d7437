package webapp

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]errorResponse{
	http.StatusBadRequest: {
		Code:    400,
		Error:   "bad_request",
		Message: "The request could not be understood by the server.",
	},
	http.StatusNotFound: {
		Code:    404,
		Error:   "not_found",
		Message: "The endpoint or resource you're looking for doesn't exist.",
	},
	http.StatusInternalServerError: {
		Code:    500,
		Error:   "internal_error",
		Message: "Something went wrong on our end. Please try again later.",
	},
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, customMessage string) {
	resp, ok := errorMessages[code]
	if !ok {
		resp = errorResponse{Code: code, Error: "error", Message: "An unexpected error occurred."}
	}
	if customMessage != "" {
		resp.Message = customMessage
	}
	writeJSON(w, code, resp)
}
