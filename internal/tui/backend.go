package tui

import (
	"context"

	"github.com/melmoskitchen/pantry/internal/api"
)

// Backend is the slice of the API client the views consume. *api.Client
// satisfies it; tests substitute a recording fake.
type Backend interface {
	Categories(ctx context.Context) ([]api.Category, error)
	Products(ctx context.Context, categoryID string) ([]api.Product, error)
	History(ctx context.Context) ([]api.HistoryEntry, error)

	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.User, error)
	SetAvatar(ctx context.Context, avatarURL *string) (*api.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error

	ListUsers(ctx context.Context) ([]api.User, error)
	Register(ctx context.Context, user api.NewUser) (*api.User, error)
	UpdateUser(ctx context.Context, id string, update api.UserUpdate) (*api.User, error)
	DeleteUser(ctx context.Context, id string) error
}

var _ Backend = (*api.Client)(nil)
