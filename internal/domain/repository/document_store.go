package repository

import (
	"context"
	"encoding/json"
)

// Claves de documento persistidas por usuario. Cada clave guarda un documento
// JSON completo; las escrituras sobreescriben el documento entero.
const (
	KeyCustomers       = "customers"
	KeyOptions         = "options"
	KeyPlanMaster      = "plan_master"
	KeyTeam            = "team"
	KeyExpenses        = "expenses"
	KeyTaxSettings     = "tax_settings"
	KeySenderProfile   = "invoice_sender_profile"
	KeyCustomFields    = "custom_fields"
	KeyCalendarFilters = "calendar_filters"
	KeyDashboardConfig = "dashboard_config"
	KeyColumnConfig    = "column_config"
	KeyContractTmpl    = "contract_template"
	KeyCurrency        = "currency"
	KeyLanguage        = "lang"
	KeyTheme           = "theme"
	KeyPreferredView   = "preferred_view"
)

// DocumentStore puerto de persistencia clave→documento por usuario.
// Get devuelve (nil, nil) cuando la clave no existe.
type DocumentStore interface {
	Get(ctx context.Context, userID, key string) (json.RawMessage, error)
	Put(ctx context.Context, userID, key string, doc json.RawMessage) error
	Delete(ctx context.Context, userID, key string) error
}
