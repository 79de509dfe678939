package dto

import "time"

type Health struct {
	Status string `json:"status"`
}

type AppInfo struct {
	Name   string `json:"name"`
	GitRef string `json:"git_ref"`
	GitSha string `json:"git_sha"`
}

type Model struct {
	Name        string `json:"name"`
	Upstream    string `json:"upstream"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default"`
}

type UserSpec struct {
	Email          string `json:"email"`
	Alias          string `json:"alias,omitempty"`
	RequestLimit   int64  `json:"request_limit,omitempty"`
	ConcurrencyCap int64  `json:"concurrency_cap,omitempty"`
}

type RegisterRequest struct {
	Users []UserSpec `json:"users"`
}

type RegisterResponse struct {
	Registered int `json:"registered"`
}

type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse carries the freshly signed credential. The quota fields are a
// snapshot taken at issuance; the authoritative counters live in the store and
// may have moved on by the time the token is used.
type TokenResponse struct {
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	RequestLimit   int64     `json:"request_limit"`
	RequestsUsed   int64     `json:"requests_used"`
	ConcurrencyCap int64     `json:"concurrency_cap"`
	Alias          string    `json:"alias,omitempty"`
}

type UserInfo struct {
	Email          string `json:"email"`
	Alias          string `json:"alias,omitempty"`
	RequestLimit   int64  `json:"request_limit"`
	RequestsUsed   int64  `json:"requests_used"`
	ConcurrencyCap int64  `json:"concurrency_cap"`
	ActiveStreams  int64  `json:"active_streams"`
	Blocked        bool   `json:"blocked"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	// Email is honored only when the identity-fallback option is enabled and
	// no bearer credential is presented.
	Email    string        `json:"email,omitempty"`
	Messages []ChatMessage `json:"messages"`
	Model    string        `json:"model,omitempty"`
	// Stream defaults to true when omitted.
	Stream      *bool    `json:"stream,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	TopK        *int64   `json:"top_k,omitempty"`
}

type ChatResponse struct {
	Text string `json:"text"`
}
