package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func userToRecord(u entities.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Role:         string(u.Role),
		Active:       u.Active,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func recordToUser(r userRecord) entities.User {
	return entities.User{
		ID:           r.ID,
		Username:     r.Username,
		Name:         r.Name,
		Role:         entities.UserRole(r.Role),
		Active:       r.Active,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (j *JSONFile) loadUsers() {
	var records []userRecord
	if j.load(usersFile, &records) && len(records) > 0 {
		j.users = make([]entities.User, 0, len(records))
		for _, r := range records {
			j.users = append(j.users, recordToUser(r))
		}
		return
	}

	seeded, err := seedUsers(j.seedAdminPassword)
	if err != nil {
		j.log.Errorw("failed to seed admin user", "error", err)
		j.users = nil
		return
	}
	j.users = seeded
	j.persistUsersLocked()
	j.log.Infow("seeded initial admin user")
}

func (j *JSONFile) persistUsersLocked() {
	records := make([]userRecord, 0, len(j.users))
	for _, u := range j.users {
		records = append(records, userToRecord(u))
	}
	j.persist(usersFile, records)
}

// ListUsers returns every account with the credential hash stripped.
func (j *JSONFile) ListUsers(_ context.Context) ([]entities.User, error) {
	j.usersMu.Lock()
	defer j.usersMu.Unlock()

	out := make([]entities.User, 0, len(j.users))
	for _, u := range j.users {
		out = append(out, u.WithoutHash())
	}
	return out, nil
}

// GetUserByUsername returns the full record including the credential
// hash. Exact, case-sensitive match. Login path only.
func (j *JSONFile) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	j.usersMu.Lock()
	defer j.usersMu.Unlock()

	for _, u := range j.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// CreateUser hashes the password and stores a new account. The
// returned record carries no hash.
func (j *JSONFile) CreateUser(_ context.Context, user entities.User, password string) (*entities.User, error) {
	j.usersMu.Lock()
	defer j.usersMu.Unlock()

	for _, u := range j.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("%w: %q", entities.ErrUsernameExists, user.Username)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)
	user.CreatedAt = now
	user.UpdatedAt = now

	j.users = append(j.users, user)
	j.persistUsersLocked()

	j.log.Infow("user created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	safe := user.WithoutHash()
	return &safe, nil
}

// UpdateUser applies a partial patch; a supplied password is re-hashed.
func (j *JSONFile) UpdateUser(_ context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	j.usersMu.Lock()
	defer j.usersMu.Unlock()

	for idx := range j.users {
		if j.users[idx].ID != id {
			continue
		}

		user := &j.users[idx]
		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.Role != nil {
			user.Role = *patch.Role
		}
		if patch.Active != nil {
			user.Active = *patch.Active
		}
		if patch.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password: %w", err)
			}
			user.PasswordHash = string(hash)
		}
		user.UpdatedAt = time.Now()

		j.persistUsersLocked()

		j.log.Infow("user updated", "user_id", id)
		safe := user.WithoutHash()
		return &safe, nil
	}
	return nil, fmt.Errorf("%w: %q", entities.ErrUserNotFound, id)
}

// DeleteUser removes an account and returns the removed record, hash
// stripped.
func (j *JSONFile) DeleteUser(_ context.Context, id string) (*entities.User, error) {
	j.usersMu.Lock()
	defer j.usersMu.Unlock()

	for idx := range j.users {
		if j.users[idx].ID != id {
			continue
		}

		removed := j.users[idx].WithoutHash()
		j.users = append(j.users[:idx], j.users[idx+1:]...)
		j.persistUsersLocked()

		j.log.Infow("user removed", "user_id", id)
		return &removed, nil
	}
	return nil, fmt.Errorf("%w: %q", entities.ErrUserNotFound, id)
}
