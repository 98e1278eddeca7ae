package dto

import "github.com/jhoicas/PhotoCRM-api/internal/domain/entity"

// Snapshot formato del archivo de export/import JSON. Es el mismo formato
// que producía el export del cliente original, para que los archivos viejos
// sigan siendo importables.
type Snapshot struct {
	Customers     []entity.Customer     `json:"customers"`
	Options       map[string][]string   `json:"options,omitempty"`
	PlanMaster    []entity.PlanEntry    `json:"planMaster,omitempty"`
	Team          []entity.Photographer `json:"team,omitempty"`
	Expenses      []entity.Expense      `json:"expenses,omitempty"`
	TaxSettings   *entity.TaxSettings   `json:"taxSettings,omitempty"`
	SenderProfile *entity.SenderProfile `json:"senderProfile,omitempty"`
	CustomFields  []entity.CustomField  `json:"customFields,omitempty"`
	Currency      string                `json:"currency,omitempty"`
	ExportedAt    string                `json:"exportedAt,omitempty"`
}

// RawSnapshot versión sin tipar de Snapshot para el import: los clientes se
// coaccionan registro a registro (pueden venir de esquemas viejos).
type RawSnapshot struct {
	Customers     []map[string]any      `json:"customers"`
	Options       map[string][]string   `json:"options"`
	PlanMaster    []entity.PlanEntry    `json:"planMaster"`
	Team          []entity.Photographer `json:"team"`
	Expenses      []entity.Expense      `json:"expenses"`
	TaxSettings   *entity.TaxSettings   `json:"taxSettings"`
	SenderProfile *entity.SenderProfile `json:"senderProfile"`
	CustomFields  []entity.CustomField  `json:"customFields"`
	Currency      string                `json:"currency"`
}

// MergeStats resultado de un import: cuántos clientes se añadieron, cuántos
// se reemplazaron por tener updatedAt más reciente y cuántos miembros de
// equipo nuevos entraron.
type MergeStats struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Team    int `json:"team"`
}
