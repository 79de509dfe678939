package models

import (
	"strings"
	"time"
)

// QuotaRecord is the durable per-identity admission state. RequestsUsed only
// ever grows; ActiveStreams tracks reservations that have not been released
// yet and stays within [0, ConcurrencyCap].
type QuotaRecord struct {
	Identity       string
	Alias          string
	RequestLimit   int64
	RequestsUsed   int64
	ConcurrencyCap int64
	ActiveStreams  int64
	Blocked        bool
	UpdatedAt      time.Time
}

// UserSpec is one registration entry. Zero limits are filled from the
// store defaults.
type UserSpec struct {
	Identity       string
	Alias          string
	RequestLimit   int64
	ConcurrencyCap int64
}

type UsageAction string

const (
	UsageReserve UsageAction = "reserve"
	UsageRelease UsageAction = "release"
)

// UsageEntry is an append-only audit record, written in the same atomic unit
// as the record mutation it documents. Nothing in the gateway reads it back.
type UsageEntry struct {
	ID       string
	Identity string
	Action   UsageAction
	At       time.Time
}

// NormalizeIdentity lower-cases and trims an identity key. Every boundary
// that accepts an identity must pass it through here before touching the store.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}
