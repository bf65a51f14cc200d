package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO Users (login, password, phoneNum, favItems, type)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		user.Login, user.PasswordHash, user.PhoneNum, user.FavItems, string(user.Role),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByLogin obtiene un usuario por login; (nil, nil) si no existe.
func (r *UserRepo) GetByLogin(login string) (*entity.User, error) {
	query := `
		SELECT login, password, phoneNum, favItems, type
		FROM Users WHERE login = $1`
	var u entity.User
	var role string
	err := r.pool.QueryRow(context.Background(), query, login).Scan(
		&u.Login, &u.PasswordHash, &u.PhoneNum, &u.FavItems, &role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	parsed, ok := entity.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("user %s: %w (%q)", login, domain.ErrUnknownRole, role)
	}
	u.Role = parsed
	return &u, nil
}

// UpdatePassword actualiza el hash de contraseña.
func (r *UserRepo) UpdatePassword(login, passwordHash string) error {
	return r.updateField(`UPDATE Users SET password = $2 WHERE login = $1`, login, passwordHash)
}

// UpdatePhoneNum actualiza el teléfono.
func (r *UserRepo) UpdatePhoneNum(login, phoneNum string) error {
	return r.updateField(`UPDATE Users SET phoneNum = $2 WHERE login = $1`, login, phoneNum)
}

// UpdateFavItems actualiza los ítems favoritos.
func (r *UserRepo) UpdateFavItems(login, favItems string) error {
	return r.updateField(`UPDATE Users SET favItems = $2 WHERE login = $1`, login, favItems)
}

// UpdateRole actualiza el rol (solo gerencia llega aquí).
func (r *UserRepo) UpdateRole(login string, role entity.Role) error {
	return r.updateField(`UPDATE Users SET type = $2 WHERE login = $1`, login, string(role))
}

func (r *UserRepo) updateField(query, login, value string) error {
	tag, err := r.pool.Exec(context.Background(), query, login, value)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
