// Package auth implementa el núcleo de autenticación: registro, login y
// emisión del token de sesión. El token es autocontenido (JWT HS256, 30 días):
// no hay lista de revocación del lado servidor, así que un token emitido sigue
// siendo válido hasta su expiración natural aunque el usuario haga logout.
package auth

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
	"github.com/jhoicas/servihogar-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	profRepo repository.ProfessionalRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profRepo repository.ProfessionalRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profRepo: profRepo, jwtCfg: jwtCfg}
}

// Register crea la cuenta: hashea el password con bcrypt (salt fresco por
// llamada) y persiste. El pre-chequeo de email es solo para dar un error
// amable; la violación del índice unique en Create es el árbitro real de la
// carrera create/create y también retorna ErrEmailAlreadyExists.
// Si el rol es professional, crea además el perfil profesional vacío.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := uc.userRepo.FindByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           entity.NewID("user", 12),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if role == entity.RoleProfessional {
		prof := &entity.Professional{
			UserID:            user.ID,
			ServiceCategories: []string{},
			Availability:      json.RawMessage(`{}`),
			Verified:          false,
			Rating:            decimal.Zero,
			TotalReviews:      0,
			EarningsTotal:     decimal.Zero,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := uc.profRepo.Create(prof); err != nil {
			return nil, err
		}
	}

	return uc.issueSession(user)
}

// Login verifica email/password y emite un token de sesión nuevo.
// Email desconocido y password incorrecto retornan el mismo
// ErrInvalidCredentials: la respuesta no distingue los dos casos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	// Cualquier error de bcrypt cuenta como "no coincide"; nunca como excepción
	// que salte la ruta de rechazo.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issueSession(user)
}

// UpdateProfile actualiza nombre y/o teléfono del usuario autenticado.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (uc *AuthUseCase) issueSession(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		User:    *ToUserResponse(user),
		Token:   token,
	}, nil
}

// ToUserResponse proyección segura: el hash de password nunca viaja en respuestas.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}
