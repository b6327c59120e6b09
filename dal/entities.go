package dal

import (
	"time"
)

type Session struct {
	UserId       string
	UserUrn      string // urn:li:person:8675309
	AuthVerified bool   // Backend confirmed the LinkedIn token is usable
	ConnectedAt  *time.Time
	VerifiedAt   *time.Time
}

type PublishRecord struct {
	UserId         string
	PostId         string
	ContentHash    int64 // murmur3 of the full post content
	ContentPreview string
	ImageUrl       *string
	TestMode       bool
	Success        bool
	Error          string
	PublishedAt    time.Time
}
