package dto

// Valores por defecto y límites de paginación para listados.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest paginación para listados (1-based).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize ajusta valores fuera de rango: page < 1 pasa a 1, pageSize <= 0
// usa el valor por defecto y pageSize se recorta al máximo.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset devuelve el desplazamiento 0-based equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
