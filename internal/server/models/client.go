package models

import "time"

// SubscriptionType is the license tier of a client.
type SubscriptionType string

const (
	SubscriptionInactive  SubscriptionType = "inactive"
	SubscriptionBasic     SubscriptionType = "basic"
	SubscriptionUnlimited SubscriptionType = "unlimited"
)

// Valid reports whether s is a known tier.
func (s SubscriptionType) Valid() bool {
	switch s {
	case SubscriptionInactive, SubscriptionBasic, SubscriptionUnlimited:
		return true
	}
	return false
}

// Client is a school holding a license.
type Client struct {
	ID               int64            `json:"client_id"`
	APIKey           string           `json:"api_key"`
	SchoolName       string           `json:"school_name"`
	SubscriptionType SubscriptionType `json:"subscription_type"`
	StartDate        *time.Time       `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	Autorenew        bool             `json:"autorenew"`
}

type ClientUpdate struct {
	APIKey           *string           `json:"api_key"`
	SchoolName       *string           `json:"school_name"`
	SubscriptionType *SubscriptionType `json:"subscription_type"`
	StartDate        *time.Time        `json:"start_date"`
	EndDate          *time.Time        `json:"end_date"`
	Autorenew        *bool             `json:"autorenew"`
}

// ClientAccount links a user to a client.
type ClientAccount struct {
	ClientID int64 `json:"client_id"`
	UserID   int64 `json:"user_id"`
}
