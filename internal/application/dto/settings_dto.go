package dto

// PlanInput alta/actualización de un plan del catálogo.
type PlanInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExpenseInput alta de gasto.
type ExpenseInput struct {
	Date     string  `json:"date"`
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Memo     string  `json:"memo"`
}

// TeamMemberInput alta de miembro del equipo.
type TeamMemberInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Color string `json:"color"`
}

// CustomFieldInput alta de campo personalizado.
type CustomFieldInput struct {
	Label string `json:"label"`
}

// PreferenceInput valor de una preferencia de usuario (moneda, tema, idioma,
// vista preferida, plantilla de contrato, configuración del dashboard).
type PreferenceInput struct {
	Value string `json:"value"`
}
