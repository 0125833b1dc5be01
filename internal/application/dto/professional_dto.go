package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UpsertProfessionalProfileRequest entrada para crear/actualizar el perfil profesional.
type UpsertProfessionalProfileRequest struct {
	ServiceCategories []string        `json:"service_categories" validate:"required"`
	Availability      json.RawMessage `json:"availability"`
}

// ProfessionalResponse salida de un perfil profesional.
// UserInfo solo se llena en los listados de administración.
type ProfessionalResponse struct {
	UserID            string          `json:"user_id"`
	ServiceCategories []string        `json:"service_categories"`
	Availability      json.RawMessage `json:"availability,omitempty"`
	Verified          bool            `json:"verified"`
	Rating            decimal.Decimal `json:"rating"`
	TotalReviews      int             `json:"total_reviews"`
	EarningsTotal     decimal.Decimal `json:"earnings_total"`
	CreatedAt         time.Time       `json:"created_at"`
	UserInfo          *UserResponse   `json:"user_info,omitempty"`
}

// EarningsResponse dashboard de ganancias del profesional.
type EarningsResponse struct {
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	CompletedJobs int             `json:"completed_jobs"`
	Rating        decimal.Decimal `json:"rating"`
	TotalReviews  int             `json:"total_reviews"`
}

// VerifyProfessionalRequest entrada para verificar/desverificar (solo admin).
type VerifyProfessionalRequest struct {
	Verified bool `json:"verified"`
}
