package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        string
	UserId    uuid.UUID
	ExpiresAt int64
	CreatedAt int64
}

func (session Session) Expired(now time.Time) bool {
	return now.Unix() >= session.ExpiresAt
}
