package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"swift-courier/config"
	"swift-courier/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

// NewUserRepository picks the Postgres store when a database is connected and
// falls back to an in-memory store for demo mode.
func NewUserRepository() UserRepository {
	if config.DB != nil {
		return &PostgresUserRepository{}
	}
	return defaultMemoryUsers
}

type PostgresUserRepository struct{}

func (r *PostgresUserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, full_name, role, created_at, updated_at
	          FROM users WHERE email = $1`

	var u models.User
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *PostgresUserRepository) Create(user *models.User) error {
	query := `INSERT INTO users (email, password, full_name, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`

	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		user.Email, user.Password, user.FullName, user.Role, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// MemoryUserRepository backs the placeholder auth flow when no database is
// configured. Accounts last for the process lifetime only.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*models.User
}

var defaultMemoryUsers = NewMemoryUserRepository()

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: map[string]*models.User{}}
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return errors.New("email already registered")
	}
	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++
	copied := *user
	r.users[user.Email] = &copied
	return nil
}
