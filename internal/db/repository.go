package db

import (
	"context"
	"time"
)

// Romanization is one persisted romanization request with its three
// renderings before and after rule application.
type Romanization struct {
	ID            int64
	Input         string
	Roman         string
	Jamo          string
	Hangul        string
	AppliedRoman  string
	AppliedJamo   string
	AppliedHangul string
	CreatedAt     time.Time
}

type SaveRomanizationParams struct {
	Input         string
	Roman         string
	Jamo          string
	Hangul        string
	AppliedRoman  string
	AppliedJamo   string
	AppliedHangul string
}

type ListRomanizationsParams struct {
	Limit  int32
	Offset int32
}

// Repository is the storage interface for romanization history.
// Implemented by the sqlite and postgres packages.
type Repository interface {
	// SaveRomanization upserts by input text and returns the stored row.
	SaveRomanization(ctx context.Context, arg SaveRomanizationParams) (Romanization, error)
	GetRomanization(ctx context.Context, id int64) (Romanization, error)
	GetRomanizationByInput(ctx context.Context, input string) (Romanization, error)
	ListRomanizations(ctx context.Context, arg ListRomanizationsParams) ([]Romanization, error)
	CountRomanizations(ctx context.Context) (int64, error)
	Close() error
}
