package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/pricing"
	"github.com/jhoicas/PhotoCRM-api/pkg/currency"
	"github.com/jhoicas/PhotoCRM-api/pkg/logger"
)

// Plazos de vencimiento por defecto desde la fecha de emisión.
const (
	invoiceDueDays = 14
	quoteDueDays   = 30
)

// UseCase armado de facturas, presupuestos y contratos de un cliente.
type UseCase struct {
	customers *usecase.CustomerUseCase
	settings  *usecase.SettingsUseCase
	generator PDFGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(customers *usecase.CustomerUseCase, settings *usecase.SettingsUseCase, generator PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{customers: customers, settings: settings, generator: generator, log: log}
}

// Build arma el documento resolviendo cada campo en cadena: override del
// request → valores del cliente → perfil de emisor guardado → configuración
// de empresa → default. Para facturas, persiste como efecto colateral el
// perfil de emisor usado y los campos de factura del cliente.
func (uc *UseCase) Build(ctx context.Context, userID, customerID, kind string, req dto.DocumentRequest) (*Model, error) {
	if kind != KindInvoice && kind != KindQuote {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, kind)
	}
	c, err := uc.customers.Get(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}
	tax, err := uc.settings.TaxSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.settings.SenderProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	code, err := uc.settings.Preference(ctx, userID, "currency")
	if err != nil {
		return nil, err
	}

	issue := firstNonEmpty(req.IssueDate, today())
	due := req.DueDate
	if due == "" {
		if kind == KindInvoice {
			due = firstNonEmpty(c.InvoiceDueDate, addDays(issue, invoiceDueDays))
		} else {
			due = addDays(issue, quoteDueDays)
		}
	}

	number := req.Number
	if number == "" && kind == KindInvoice {
		number = c.InvoiceNumber // el último emitido se propone de nuevo
	}
	if number == "" {
		number = generateNumber(kind, issue)
	}

	m := &Model{
		Kind:      kind,
		Number:    number,
		IssueDate: issue,
		DueDate:   due,

		SenderName:    firstNonEmpty(req.SenderName, c.InvoiceSenderName, profile.Name, tax.CompanyName),
		SenderAddress: firstNonEmpty(req.SenderAddress, profile.Address, tax.Address),
		SenderEmail:   firstNonEmpty(req.SenderEmail, c.InvoiceSenderContact, profile.Email, tax.Email),
		SenderPhone:   firstNonEmpty(req.SenderPhone, profile.Phone, tax.Phone),
		SenderBank:    firstNonEmpty(req.SenderBank, profile.Bank, tax.Bank),

		RecipientName:    firstNonEmpty(req.RecipientName, c.InvoiceRecipientName, c.Name),
		RecipientContact: firstNonEmpty(req.RecipientContact, c.InvoiceRecipientContact, c.Contact, c.Email),

		Items:    buildItems(req.Items, c),
		TaxLabel: tax.Label,
		Currency: code,
		Message:  firstNonEmpty(req.Message, c.InvoiceMessage, tax.InvoiceFooterMessage),
		Template: tax.InvoiceTemplate,
	}

	subtotal := decimal.Zero
	for _, item := range m.Items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Amount))
	}
	breakdown := pricing.CalculateTax(subtotal, pricing.TaxConfig{
		Enabled:  tax.Enabled,
		Rate:     decimal.NewFromFloat(tax.Rate),
		Included: tax.Included,
	})
	m.Subtotal, _ = breakdown.Subtotal.Float64()
	m.Tax, _ = breakdown.Tax.Float64()
	m.Total, _ = breakdown.Total.Float64()

	if kind == KindInvoice {
		uc.persistUsage(ctx, userID, customerID, m, profile)
	}
	return m, nil
}

// RenderDocument delega el render del documento en el generador PDF.
func (uc *UseCase) RenderDocument(ctx context.Context, m *Model) ([]byte, error) {
	return uc.generator.RenderDocument(ctx, m)
}

// BuildContract resuelve la plantilla (la del request, la guardada por el
// usuario o la base del tipo) y sustituye los placeholders con los datos del
// cliente. Tokens desconocidos se dejan tal cual.
func (uc *UseCase) BuildContract(ctx context.Context, userID, customerID string, req dto.ContractRequest) (*Contract, error) {
	c, err := uc.customers.Get(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}
	tax, err := uc.settings.TaxSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	code, err := uc.settings.Preference(ctx, userID, "currency")
	if err != nil {
		return nil, err
	}

	template := req.Template
	if template == "" {
		saved, err := uc.settings.Preference(ctx, userID, "contract_template")
		if err != nil {
			return nil, err
		}
		template = saved
	}
	if template == "" {
		template = defaultTemplate(req.TemplateType)
	}

	return &Contract{
		Title: contractTitle(req.TemplateType),
		Body:  ApplyPlaceholders(template, c, tax.CompanyName, code),
	}, nil
}

// RenderContract delega el render del contrato en el generador PDF.
func (uc *UseCase) RenderContract(ctx context.Context, c *Contract) ([]byte, error) {
	return uc.generator.RenderContract(ctx, c)
}

// ApplyPlaceholders sustituye los tokens conocidos de una plantilla de
// contrato. Un token que no esté en la lista queda intacto.
func ApplyPlaceholders(template string, c *entity.Customer, companyName, currencyCode string) string {
	plan := firstNonEmpty(c.PlanDetails.PlanName, c.Plan, "Photography")
	replacer := strings.NewReplacer(
		"{{customer_name}}", firstNonEmpty(c.Name, "—"),
		"{{shooting_date}}", firstNonEmpty(c.ShootingDate, "—"),
		"{{total_price}}", currency.Format(currencyCode, c.Revenue),
		"{{plan_name}}", plan,
		"{{location}}", firstNonEmpty(c.Location, "—"),
		"{{contact}}", firstNonEmpty(c.Contact, "—"),
		"{{today}}", today(),
		"{{company_name}}", firstNonEmpty(companyName, "—"),
	)
	return replacer.Replace(template)
}

// persistUsage guarda el perfil de emisor y los campos de factura del
// cliente. Un fallo aquí no invalida el documento ya armado: se registra y se
// sigue.
func (uc *UseCase) persistUsage(ctx context.Context, userID, customerID string, m *Model, profile *entity.SenderProfile) {
	used := entity.SenderProfile{
		Name:    m.SenderName,
		Address: m.SenderAddress,
		Email:   m.SenderEmail,
		Phone:   m.SenderPhone,
		Bank:    m.SenderBank,
	}
	if used != *profile {
		if _, err := uc.settings.SaveSenderProfile(ctx, userID, used); err != nil {
			uc.log.Warn().Err(err).Msg("guardar perfil de emisor")
		}
	}
	items := make([]entity.InvoiceLine, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entity.InvoiceLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	usage := usecase.InvoiceUsage{
		Number:           m.Number,
		IssueDate:        m.IssueDate,
		DueDate:          m.DueDate,
		Message:          m.Message,
		SenderName:       m.SenderName,
		SenderContact:    m.SenderEmail,
		RecipientName:    m.RecipientName,
		RecipientContact: m.RecipientContact,
		Items:            items,
	}
	if err := uc.customers.RecordInvoiceUsage(ctx, userID, customerID, usage); err != nil {
		uc.log.Warn().Err(err).Str("customer_id", customerID).Msg("guardar datos de factura del cliente")
	}
}

// buildItems resuelve las líneas en cadena: las del request, las guardadas en
// el cliente, o una única línea "<plan> Session" por el revenue. Todas pasan
// por la misma normalización: descripción recortada, cantidades no positivas
// descartadas, precios negativos a cero.
func buildItems(inputs []dto.LineItemInput, c *entity.Customer) []Line {
	if len(inputs) == 0 {
		for _, it := range c.InvoiceItems {
			inputs = append(inputs, dto.LineItemInput{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
	}
	if len(inputs) == 0 {
		plan := firstNonEmpty(c.PlanDetails.PlanName, c.Plan, "Photography")
		inputs = []dto.LineItemInput{{
			Description: plan + " Session",
			Quantity:    1,
			UnitPrice:   c.Revenue,
		}}
	}
	items := make([]Line, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			continue
		}
		unit := in.UnitPrice
		if unit < 0 {
			unit = 0
		}
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			desc = "Photography Service"
		}
		amount := decimal.NewFromFloat(in.Quantity).Mul(decimal.NewFromFloat(unit))
		v, _ := amount.Float64()
		items = append(items, Line{
			Description: desc,
			Quantity:    in.Quantity,
			UnitPrice:   unit,
			Amount:      v,
		})
	}
	return items
}

func generateNumber(kind, issue string) string {
	prefix := "INV"
	if kind == KindQuote {
		prefix = "QUO"
	}
	return fmt.Sprintf("%s-%s-%d", prefix, strings.ReplaceAll(issue, "-", ""), time.Now().Unix()%100000)
}

func addDays(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		t = time.Now()
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
