package usecase

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/servihogar-api/internal/application/auth"
	"github.com/jhoicas/servihogar-api/internal/application/dto"
	"github.com/jhoicas/servihogar-api/internal/domain"
	"github.com/jhoicas/servihogar-api/internal/domain/entity"
	"github.com/jhoicas/servihogar-api/internal/domain/repository"
)

// ProfessionalUseCase perfil profesional: alta/edición del perfil, ganancias
// y las operaciones de administración (listado y verificación).
type ProfessionalUseCase struct {
	profRepo    repository.ProfessionalRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
}

// NewProfessionalUseCase construye el caso de uso.
func NewProfessionalUseCase(profRepo repository.ProfessionalRepository, userRepo repository.UserRepository, bookingRepo repository.BookingRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{profRepo: profRepo, userRepo: userRepo, bookingRepo: bookingRepo}
}

// UpsertProfile crea o actualiza el perfil del profesional autenticado.
// La verificación no se toca aquí: siempre la otorga un admin.
func (uc *ProfessionalUseCase) UpsertProfile(userID string, in dto.UpsertProfessionalProfileRequest) (*dto.ProfessionalResponse, error) {
	availability := in.Availability
	if len(availability) == 0 {
		availability = json.RawMessage(`{}`)
	}
	now := time.Now()

	prof, err := uc.profRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		prof = &entity.Professional{
			UserID:            userID,
			ServiceCategories: in.ServiceCategories,
			Availability:      availability,
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
	} else {
		prof.ServiceCategories = in.ServiceCategories
		prof.Availability = availability
		prof.UpdatedAt = now
		if err := uc.profRepo.Update(prof); err != nil {
			return nil, err
		}
	}
	return toProfessionalResponse(prof), nil
}

// GetProfile devuelve el perfil del profesional autenticado.
func (uc *ProfessionalUseCase) GetProfile(userID string) (*dto.ProfessionalResponse, error) {
	prof, err := uc.profRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, domain.ErrNotFound
	}
	return toProfessionalResponse(prof), nil
}

// Earnings arma el dashboard de ganancias: acumulado, trabajos completados y rating.
// Un profesional sin perfil todavía recibe el dashboard en ceros.
func (uc *ProfessionalUseCase) Earnings(userID string) (*dto.EarningsResponse, error) {
	prof, err := uc.profRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return &dto.EarningsResponse{
			TotalEarnings: decimal.Zero,
			Rating:        decimal.Zero,
		}, nil
	}
	completed, err := uc.bookingRepo.CountByProfessionalAndStatus(userID, entity.BookingCompleted)
	if err != nil {
		return nil, err
	}
	return &dto.EarningsResponse{
		TotalEarnings: prof.EarningsTotal,
		CompletedJobs: completed,
		Rating:        prof.Rating,
		TotalReviews:  prof.TotalReviews,
	}, nil
}

// ListWithUsers listado de administración: cada perfil con los datos del usuario.
func (uc *ProfessionalUseCase) ListWithUsers() ([]dto.ProfessionalResponse, error) {
	profs, err := uc.profRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfessionalResponse, 0, len(profs))
	for _, p := range profs {
		resp := toProfessionalResponse(p)
		user, err := uc.userRepo.FindByID(p.UserID)
		if err != nil {
			return nil, err
		}
		resp.UserInfo = auth.ToUserResponse(user)
		out = append(out, *resp)
	}
	return out, nil
}

// Verify marca o desmarca un profesional como verificado (solo admin).
func (uc *ProfessionalUseCase) Verify(userID string, verified bool) error {
	found, err := uc.profRepo.UpdateVerified(userID, verified)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toProfessionalResponse(p *entity.Professional) *dto.ProfessionalResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfessionalResponse{
		UserID:            p.UserID,
		ServiceCategories: p.ServiceCategories,
		Availability:      p.Availability,
		Verified:          p.Verified,
		Rating:            p.Rating,
		TotalReviews:      p.TotalReviews,
		EarningsTotal:     p.EarningsTotal,
		CreatedAt:         p.CreatedAt,
	}
}
