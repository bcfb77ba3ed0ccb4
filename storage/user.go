package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowify/ecommerce-api/models"
)

// CreateUser registers a user record. The password must already be hashed by
// the caller. Returns ErrEmailTaken when the email is in use.
func (s *Store) CreateUser(name, email, passwordHash string) (models.User, error) {
	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.users.Update(func(users []models.User) ([]models.User, bool, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, false, ErrEmailTaken
			}
		}
		return append(users, user), true, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UserByID returns the stored record, password hash included. Controllers
// must call Sanitized before responding.
func (s *Store) UserByID(id string) (models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UserByEmail looks a user up by email, password hash included (needed for
// login).
func (s *Store) UserByEmail(email string) (models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// AllUsers returns every user with passwords already stripped.
func (s *Store) AllUsers() ([]models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

// ProfileUpdate carries the fields a user may change through the profile
// endpoint. ID and password are not part of it; attempts to set them in the
// request body are silently dropped by the binding.
type ProfileUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateProfile applies a partial profile edit and returns the updated
// record, password hash included.
func (s *Store) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	var updated models.User
	err := s.users.Update(func(users []models.User) ([]models.User, bool, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if update.Name != nil {
				users[i].Name = *update.Name
			}
			if update.Email != nil {
				users[i].Email = *update.Email
			}
			users[i].UpdatedAt = time.Now().UTC()
			updated = users[i]
			return users, true, nil
		}
		return nil, false, ErrNotFound
	})
	return updated, err
}
