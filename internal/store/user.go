package store

import (
	"context"
	"time"
)

// User is a console team member
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserParams struct {
	Name   string
	Email  string
	Role   string
	Status string
}

// UpdateUserParams lists the client-writable fields of a User. Nil means unchanged.
type UpdateUserParams struct {
	Name   *string
	Email  *string
	Role   *string
	Status *string
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:        s.newID(),
		Name:      params.Name,
		Email:     params.Email,
		Role:      params.Role,
		Status:    params.Status,
		CreatedAt: s.now(),
	}
	if user.Role == "" {
		user.Role = UserRoleAgent
	}
	if user.Status == "" {
		user.Status = UserStatusActive
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	user := &s.users[i]
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Role != nil {
		user.Role = *params.Role
	}
	if params.Status != nil {
		user.Status = *params.Status
	}
	return *user, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
