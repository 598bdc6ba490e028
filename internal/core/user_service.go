package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

type userService struct {
	pool *pgxpool.Pool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool) UserService {
	return &userService{pool: pool}
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.getBy(ctx, "username = $1", username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, p NewUserParams) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := p.Role
	if role != RoleAdmin {
		role = RoleStandard
	}

	u := &User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.Role, u.FirstName, u.LastName,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateUser
	}
	if err != nil {
		return nil, fmt.Errorf("create user %q: %w", p.Username, err)
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*User, error) {
	return s.getBy(ctx, "id = $1", id)
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.getBy(ctx, "email = $1", email)
}

func (s *userService) UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1`,
		id, firstName, lastName, email,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("update profile id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, id int, current, next string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, string(hash),
	); err != nil {
		return fmt.Errorf("change password id=%d: %w", id, err)
	}
	return nil
}

func (s *userService) getBy(ctx context.Context, where string, arg any) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, role, first_name, last_name, created_at
		FROM users
		WHERE `+where+`
		LIMIT 1`,
		arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
