package repository

import "github.com/jhoicas/cafe-orders/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByLogin(login string) (*entity.User, error)
	UpdatePassword(login, passwordHash string) error
	UpdatePhoneNum(login, phoneNum string) error
	UpdateFavItems(login, favItems string) error
	UpdateRole(login string, role entity.Role) error
}
