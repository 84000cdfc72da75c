package auth

import (
	"time"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

// Claims is the decoded token payload attached to authenticated requests.
type Claims struct {
	UserID  string
	Email   string
	Name    string
	IsAdmin bool
}

// Strategy issues and verifies signed bearer tokens.
type Strategy interface {
	IssueToken(user *model.User) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
