package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tareas-pro/internal/application/dto"
	"github.com/tu-usuario/tareas-pro/internal/domain"
	"github.com/tu-usuario/tareas-pro/internal/domain/entity"
	"github.com/tu-usuario/tareas-pro/internal/domain/repository"
	"github.com/tu-usuario/tareas-pro/pkg/hasher"
	"github.com/tu-usuario/tareas-pro/pkg/jwt"
)

// TokenConfig parámetros de emisión de tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenPair tokens de sesión recién emitidos; el transporte (cookies) lo decide el handler.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthUseCase casos de uso de autenticación: signup, login, refresh y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   hasher.Hasher
	tokens   TokenConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, h hasher.Hasher, tokens TokenConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: h, tokens: tokens}
}

// Signup crea una cuenta: normaliza email, hashea password y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe (case-insensitive)
// y domain.ErrInvalidInput si el rol no es employer/employee.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) error {
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	return uc.userRepo.Create(ctx, user)
}

// Login verifica email/password y emite el par de tokens con los claims del
// usuario capturados en este momento (snapshot: cambios posteriores de rol o
// nombre no se reflejan hasta refresh o re-login).
// Email inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, TokenPair{}, err
	}
	if user == nil || !uc.hasher.Check(in.Password, user.PasswordHash) {
		return nil, TokenPair{}, domain.ErrUnauthorized
	}

	pair, err := uc.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		User:    *dto.ToUserResponse(user),
	}, pair, nil
}

// Refresh vuelve a leer el usuario (claims frescos) y emite un nuevo token de
// acceso. Devuelve domain.ErrUserNotFound si la cuenta ya no existe.
func (uc *AuthUseCase) Refresh(ctx context.Context, userID string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return jwt.Generate(uc.tokens.Secret, uc.tokens.Issuer, jwt.KindAccess, uc.tokens.AccessTTL, identityOf(user))
}

// Me devuelve el perfil actual leído de la DB (no de los claims del token).
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (TokenPair, error) {
	id := identityOf(user)
	access, err := jwt.Generate(uc.tokens.Secret, uc.tokens.Issuer, jwt.KindAccess, uc.tokens.AccessTTL, id)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := jwt.Generate(uc.tokens.Secret, uc.tokens.Issuer, jwt.KindRefresh, uc.tokens.RefreshTTL, id)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func identityOf(u *entity.User) jwt.Identity {
	return jwt.Identity{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
