package processor

import (
	"context"
	"errors"
	"fmt"

	"wa-console/internal/observability"
	"wa-console/internal/store"
)

// TeamStore defines the store operations required by TeamProcessor
type TeamStore interface {
	ListUsers(ctx context.Context) ([]store.User, error)
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	UpdateUser(ctx context.Context, id string, params store.UpdateUserParams) (store.User, error)
	DeleteUser(ctx context.Context, id string) error
}

var ErrUserNotFound = fmt.Errorf("team member %w", store.ErrNotFound)

type TeamProcessor struct {
	store  TeamStore
	logger *observability.Logger
}

func New(store TeamStore, logger *observability.Logger) TeamProcessor {
	return TeamProcessor{
		store:  store,
		logger: logger,
	}
}

func (p *TeamProcessor) ListMembers(ctx context.Context) ([]store.User, error) {
	users, err := p.store.ListUsers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list team members", err)
		return nil, err
	}
	return users, nil
}

func (p *TeamProcessor) AddMember(ctx context.Context, params store.CreateUserParams) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "role", Value: params.Role})

	user, err := p.store.CreateUser(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to add team member", err)
		return store.User{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID})
	p.logger.Info(ctx, "team member added")
	return user, nil
}

func (p *TeamProcessor) UpdateMember(ctx context.Context, userID string, params store.UpdateUserParams) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	user, err := p.store.UpdateUser(ctx, userID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to update team member", err)
		return store.User{}, err
	}
	return user, nil
}

func (p *TeamProcessor) RemoveMember(ctx context.Context, userID string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	if err := p.store.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to remove team member", err)
		return err
	}

	p.logger.Info(ctx, "team member removed")
	return nil
}
