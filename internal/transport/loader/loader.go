// Package loader provides per-request DataLoaders for users and profiles.
// The session viewer and every question and answer author on a GraphQL
// response resolve through them, so each kind costs one query per batch.
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	User    userRepo
	Profile profileRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders is created per request via NewLoaders.
type Loaders struct {
	// UserByID yields domain.ErrNotFound for unknown ids.
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
	// ProfileByID yields nil for users that never saved a nickname.
	ProfileByID *dataloader.Loader[uuid.UUID, *domain.Profile]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:    newLoader(newUsersBatchFn(repos.User)),
		ProfileByID: newLoader(newProfilesBatchFn(repos.Profile)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// Viewer resolves the session user of ctx into header data. Anonymous
// requests and sessions whose user no longer exists yield an empty viewer.
func (l *Loaders) Viewer(ctx context.Context) (*domain.Viewer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return &domain.Viewer{}, nil
	}

	userThunk := l.UserByID.Load(ctx, userID)
	profileThunk := l.ProfileByID.Load(ctx, userID)

	user, err := userThunk()
	if err != nil {
		if isNotFound(err) {
			return &domain.Viewer{}, nil
		}
		return nil, err
	}
	profile, err := profileThunk()
	if err != nil {
		return nil, err
	}

	v := &domain.Viewer{UserID: user.ID, Email: user.Email}
	if profile.HasNickname() {
		v.Nickname = profile.Username
	}
	return v, nil
}

// ForgetProfile drops a cached profile so that a later Viewer call within
// the same request sees a nickname saved after the first lookup.
func (l *Loaders) ForgetProfile(ctx context.Context, id uuid.UUID) {
	l.ProfileByID.Clear(ctx, id)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context, is the middleware configured?")
	}
	return l
}
