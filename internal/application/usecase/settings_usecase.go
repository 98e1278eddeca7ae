package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
	"github.com/jhoicas/PhotoCRM-api/pkg/currency"
)

// Preferencias escalares admitidas y su clave de documento.
var preferenceKeys = map[string]string{
	"currency":          repository.KeyCurrency,
	"lang":              repository.KeyLanguage,
	"theme":             repository.KeyTheme,
	"preferred_view":    repository.KeyPreferredView,
	"contract_template": repository.KeyContractTmpl,
	"dashboard_config":  repository.KeyDashboardConfig,
	"column_config":     repository.KeyColumnConfig,
}

// SettingsUseCase configuración del estudio: impuestos, perfil de emisor,
// campos personalizados, filtros de calendario, listas de opciones y
// preferencias escalares.
type SettingsUseCase struct {
	store repository.DocumentStore
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.DocumentStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// ── Impuestos / datos de empresa ──────────────────────────────────────────────

// TaxSettings devuelve la configuración guardada superpuesta sobre los
// defaults, campo a campo: un documento parcial o viejo no rompe nada.
func (uc *SettingsUseCase) TaxSettings(ctx context.Context, userID string) (*entity.TaxSettings, error) {
	settings := entity.DefaultTaxSettings()
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyTaxSettings, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveTaxSettings persiste la configuración. La tasa no puede ser negativa.
func (uc *SettingsUseCase) SaveTaxSettings(ctx context.Context, userID string, in entity.TaxSettings) (*entity.TaxSettings, error) {
	if in.Rate < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.InvoiceTemplate == "" {
		in.InvoiceTemplate = entity.DefaultTaxSettings().InvoiceTemplate
	}
	if err := saveDoc(ctx, uc.store, userID, repository.KeyTaxSettings, in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ── Perfil de emisor ──────────────────────────────────────────────────────────

// SenderProfile último perfil de emisor usado al generar una factura.
func (uc *SettingsUseCase) SenderProfile(ctx context.Context, userID string) (*entity.SenderProfile, error) {
	var profile entity.SenderProfile
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeySenderProfile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveSenderProfile persiste el perfil de emisor.
func (uc *SettingsUseCase) SaveSenderProfile(ctx context.Context, userID string, in entity.SenderProfile) (*entity.SenderProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := saveDoc(ctx, uc.store, userID, repository.KeySenderProfile, in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ── Campos personalizados ─────────────────────────────────────────────────────

// CustomFields definición de campos personalizados de cliente.
func (uc *SettingsUseCase) CustomFields(ctx context.Context, userID string) ([]entity.CustomField, error) {
	var fields []entity.CustomField
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyCustomFields, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []entity.CustomField{}
	}
	return fields, nil
}

// AddCustomField crea una definición de campo personalizado.
func (uc *SettingsUseCase) AddCustomField(ctx context.Context, userID string, in dto.CustomFieldInput) (*entity.CustomField, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, domain.ErrInvalidInput
	}
	fields, err := uc.CustomFields(ctx, userID)
	if err != nil {
		return nil, err
	}
	field := entity.CustomField{ID: "custom_" + uuid.New().String(), Label: label}
	fields = append(fields, field)
	if err := saveDoc(ctx, uc.store, userID, repository.KeyCustomFields, fields); err != nil {
		return nil, err
	}
	return &field, nil
}

// RemoveCustomField elimina la definición. Los valores ya guardados en los
// clientes quedan huérfanos y dejan de mostrarse.
func (uc *SettingsUseCase) RemoveCustomField(ctx context.Context, userID, id string) error {
	fields, err := uc.CustomFields(ctx, userID)
	if err != nil {
		return err
	}
	for i, f := range fields {
		if f.ID == id {
			fields = append(fields[:i], fields[i+1:]...)
			return saveDoc(ctx, uc.store, userID, repository.KeyCustomFields, fields)
		}
	}
	return domain.ErrNotFound
}

// ── Filtros de calendario ─────────────────────────────────────────────────────

// CalendarFilters filtros de hito del calendario, con default todo visible.
func (uc *SettingsUseCase) CalendarFilters(ctx context.Context, userID string) (*entity.CalendarFilters, error) {
	filters := entity.DefaultCalendarFilters()
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyCalendarFilters, &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

// SaveCalendarFilters persiste los filtros de calendario.
func (uc *SettingsUseCase) SaveCalendarFilters(ctx context.Context, userID string, in entity.CalendarFilters) error {
	return saveDoc(ctx, uc.store, userID, repository.KeyCalendarFilters, in)
}

// ── Listas de opciones ────────────────────────────────────────────────────────

// Options listas de opciones con nombre (localizaciones, métodos de entrega...).
func (uc *SettingsUseCase) Options(ctx context.Context, userID string) (map[string][]string, error) {
	options := map[string][]string{}
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyOptions, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// SaveOptions reemplaza las listas de opciones completas.
func (uc *SettingsUseCase) SaveOptions(ctx context.Context, userID string, options map[string][]string) error {
	if options == nil {
		options = map[string][]string{}
	}
	return saveDoc(ctx, uc.store, userID, repository.KeyOptions, options)
}

// ── Preferencias escalares ────────────────────────────────────────────────────

// Preference lee una preferencia por nombre. Valores viejos pudieron
// guardarse sin comillas, así que se coacciona con cast.
func (uc *SettingsUseCase) Preference(ctx context.Context, userID, name string) (string, error) {
	key, ok := preferenceKeys[name]
	if !ok {
		return "", domain.ErrNotFound
	}
	raw, err := uc.store.Get(ctx, userID, key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return uc.preferenceDefault(name), nil
	}
	var v any
	if err := codec.Unmarshal(raw, &v); err != nil {
		return strings.Trim(string(raw), `"`), nil
	}
	return cast.ToString(v), nil
}

// SetPreference guarda una preferencia por nombre. La moneda se valida contra
// las soportadas.
func (uc *SettingsUseCase) SetPreference(ctx context.Context, userID, name, value string) error {
	key, ok := preferenceKeys[name]
	if !ok {
		return domain.ErrNotFound
	}
	if name == "currency" && !currency.IsSupported(value) {
		return domain.ErrInvalidInput
	}
	return saveDoc(ctx, uc.store, userID, key, value)
}

func (uc *SettingsUseCase) preferenceDefault(name string) string {
	switch name {
	case "currency":
		return entity.CurrencyJPY
	case "lang":
		return "en"
	case "theme":
		return "light"
	case "preferred_view":
		return "list"
	}
	return ""
}
