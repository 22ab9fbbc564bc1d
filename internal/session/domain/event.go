package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	Name                      = "session"
	AggregateNameSessionToken = "sessionToken"
)

type Event interface {
	ID() uuid.UUID
	Type() string
	AggregateID() string
}

type EventSessionIssued struct {
	EventID   uuid.UUID `json:"eventID"`
	TokenID   TokenID   `json:"tokenID"`
	OwnerID   AccountID `json:"ownerID"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (e EventSessionIssued) ID() uuid.UUID {
	return e.EventID
}

func (e EventSessionIssued) Type() string {
	return fmt.Sprintf("%s.issued", Name)
}

func (e EventSessionIssued) AggregateID() string {
	return e.OwnerID.String()
}

type EventSessionRevoked struct {
	EventID uuid.UUID `json:"eventID"`
	TokenID TokenID   `json:"tokenID"`
	OwnerID AccountID `json:"ownerID"`
}

func (e EventSessionRevoked) ID() uuid.UUID {
	return e.EventID
}

func (e EventSessionRevoked) Type() string {
	return fmt.Sprintf("%s.revoked", Name)
}

func (e EventSessionRevoked) AggregateID() string {
	return e.OwnerID.String()
}

type EventSessionExpired struct {
	EventID uuid.UUID `json:"eventID"`
	TokenID TokenID   `json:"tokenID"`
	OwnerID AccountID `json:"ownerID"`
}

func (e EventSessionExpired) ID() uuid.UUID {
	return e.EventID
}

func (e EventSessionExpired) Type() string {
	return fmt.Sprintf("%s.expired", Name)
}

func (e EventSessionExpired) AggregateID() string {
	return e.OwnerID.String()
}
