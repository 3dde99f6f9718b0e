package types

import "time"

// ApiResponse is the uniform envelope returned by every endpoint so clients
// can branch on Message/Status the same way across the API.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// LogEntry is a sanitized request/response record queued for the async
// audit logger. Secrets (passwords, card data) are redacted before it is
// created.
type LogEntry struct {
	Method          string    `json:"method"`
	URL             string    `json:"url"`
	RequestBody     string    `json:"request_body"`
	ResponseBody    string    `json:"response_body"`
	RequestHeaders  string    `json:"request_headers"`
	ResponseHeaders string    `json:"response_headers"`
	StatusCode      int       `json:"status_code"`
	CreatedAt       time.Time `json:"created_at"`
}
