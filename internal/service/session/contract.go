//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/identity"
	"foxboard/internal/pkg/tokenstore"
)

type Identity interface {
	SignIn(ctx context.Context, email, password string) (*identity.Session, error)
	SignUp(ctx context.Context, reg entities.Registration) (*identity.Session, error)
	CurrentUser(ctx context.Context, accessToken string) (*identity.SessionUser, error)
	SignOut(ctx context.Context, accessToken string) error
	Profile(ctx context.Context, userID string) (*entities.UserProfile, error)
	UpdateProfileRole(ctx context.Context, userID string, role entities.Role, companyName string) error
	ListProfiles(ctx context.Context) ([]entities.UserProfile, error)
	DeleteUser(ctx context.Context, userID string) error
}

type TokenStore interface {
	Save(ctx context.Context, key string, token tokenstore.Token) error
	Load(ctx context.Context, key string) (tokenstore.Token, error)
	Delete(ctx context.Context, key string) error
}
