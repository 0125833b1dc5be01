package dto

// ErrorResponse cuerpo de error HTTP uniforme: code es el identificador
// máquina, detail el mensaje visible para el usuario.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// SuccessResponse cuerpo genérico para operaciones sin payload (ej. logout).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
