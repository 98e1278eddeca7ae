package dto

import "github.com/jhoicas/PhotoCRM-api/internal/domain/entity"

// CustomerInput cuerpo de creación/actualización de cliente. Los importes
// llegan como float64; Revenue solo se envía cuando el usuario editó el total
// a mano (en ese caso el ajuste se recalcula para conservar el invariante).
type CustomerInput struct {
	Name     string `json:"name"`
	Furigana string `json:"furigana"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	InquiryDate  string `json:"inquiryDate"`
	ContractDate string `json:"contractDate"`
	MeetingDate  string `json:"meetingDate"`
	ShootingDate string `json:"shootingDate"`
	BillingDate  string `json:"billingDate"`

	PaymentChecked bool   `json:"paymentChecked"`
	AssignedTo     string `json:"assignedTo"`

	Plan         string                   `json:"plan"`
	PlanMasterID string                   `json:"planMasterId"`
	PlanDetails  entity.PlanDetails       `json:"planDetails"`
	ExtraCharges []entity.ExtraChargeItem `json:"extraChargeItems"`
	Adjustment   float64                  `json:"adjustment"`
	Revenue      *float64                 `json:"revenue,omitempty"`

	CustomFields map[string]string `json:"customFields"`
}

// TaskInput alta de tarea de un cliente.
type TaskInput struct {
	Text string `json:"text"`
	Due  string `json:"due"`
}

// FilterRequest parámetros del pipeline de filtrado/ordenación del listado.
type FilterRequest struct {
	Query      string `query:"q"`
	Payment    string `query:"payment"`    // all | paid | unpaid
	Month      string `query:"month"`      // all | "YYYY-MM"
	AssignedTo string `query:"assignedTo"` // all | id de fotógrafo
	SortKey    string `query:"sortKey"`    // nombre de campo, ej. shootingDate
	SortDir    string `query:"sortDir"`    // asc | desc
}

// CustomerListResponse resultado del listado filtrado.
type CustomerListResponse struct {
	Items        []entity.Customer `json:"items"`
	Total        int               `json:"total"`
	TotalRevenue float64           `json:"totalRevenue"`
}
