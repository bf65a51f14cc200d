package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// Session identidad autenticada de una sesión de consola. Se pasa explícita a
// cada operación de pedidos; nunca hay un "usuario actual" global del proceso.
type Session struct {
	ID    string
	Login string
	Role  entity.Role
}

// AuthUseCase casos de uso de autenticación: registro, login y actualización
// de perfil.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Register crea un usuario con rol Customer: hashea la contraseña con bcrypt
// y persiste. ErrLoginAlreadyExists si el login ya está tomado.
func (uc *AuthUseCase) Register(login, password, phoneNum string) error {
	if login == "" || password == "" {
		return domain.ErrInvalidSelection
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		Login:        login,
		PasswordHash: string(hash),
		PhoneNum:     phoneNum,
		FavItems:     "",
		Role:         entity.RoleCustomer,
	}
	if err := uc.users.Create(user); err != nil {
		if errors.Is(err, domain.ErrLoginAlreadyExists) {
			return domain.ErrLoginAlreadyExists
		}
		return fmt.Errorf("%w: crear usuario: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Login verifica login/password y abre una sesión con el rol del usuario.
// Credenciales malas y login inexistente son indistinguibles para el caller.
func (uc *AuthUseCase) Login(login, password string) (*Session, error) {
	user, err := uc.users.GetByLogin(login)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRole) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: buscar usuario: %v", domain.ErrPersistence, err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &Session{
		ID:    uuid.New().String(),
		Login: user.Login,
		Role:  user.Role,
	}, nil
}

// UpdatePassword cambia la contraseña de target (el propio usuario, o
// cualquiera si la sesión es de gerencia).
func (uc *AuthUseCase) UpdatePassword(sess *Session, target, newPassword string) error {
	if err := uc.canEdit(sess, target); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.wrap(uc.users.UpdatePassword(target, string(hash)))
}

// UpdatePhoneNum cambia el teléfono de target.
func (uc *AuthUseCase) UpdatePhoneNum(sess *Session, target, phoneNum string) error {
	if err := uc.canEdit(sess, target); err != nil {
		return err
	}
	return uc.wrap(uc.users.UpdatePhoneNum(target, phoneNum))
}

// UpdateFavItems cambia los ítems favoritos de target.
func (uc *AuthUseCase) UpdateFavItems(sess *Session, target, favItems string) error {
	if err := uc.canEdit(sess, target); err != nil {
		return err
	}
	return uc.wrap(uc.users.UpdateFavItems(target, favItems))
}

// UpdateRole cambia el rol de target. Solo gerencia.
func (uc *AuthUseCase) UpdateRole(sess *Session, target string, role entity.Role) error {
	if sess.Role != entity.RoleManager {
		return domain.ErrForbidden
	}
	return uc.wrap(uc.users.UpdateRole(target, role))
}

// canEdit un usuario edita su propio perfil; gerencia edita cualquiera.
func (uc *AuthUseCase) canEdit(sess *Session, target string) error {
	if sess.Login == target || sess.Role == entity.RoleManager {
		return nil
	}
	return domain.ErrForbidden
}

func (uc *AuthUseCase) wrap(err error) error {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: actualizar usuario: %v", domain.ErrPersistence, err)
}
