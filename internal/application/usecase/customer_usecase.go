package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/customer"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: CRUD, listado filtrado y tareas.
type CustomerUseCase struct {
	store repository.DocumentStore
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.DocumentStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List devuelve el listado filtrado y ordenado, con el revenue total de lo visible.
func (uc *CustomerUseCase) List(ctx context.Context, userID string, req dto.FilterRequest) (*dto.CustomerListResponse, error) {
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	filtered := FilterCustomers(list, req)
	filtered = SortCustomers(filtered, req.SortKey, req.SortDir)
	return &dto.CustomerListResponse{
		Items:        filtered,
		Total:        len(filtered),
		TotalRevenue: TotalRevenue(filtered),
	}, nil
}

// Get devuelve un cliente por id, con los cargos sintetizados desde los
// campos del esquema viejo si aún no tiene extraChargeItems (no se persiste
// hasta que el usuario guarde).
func (uc *CustomerUseCase) Get(ctx context.Context, userID, id string) (*entity.Customer, error) {
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.ID == id {
			c = customer.WithLegacyExtras(c)
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create da de alta un cliente. El nombre es obligatorio.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CustomerInput) (*entity.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}

	now := nowISO()
	c := uc.fromInput(ctx, userID, in)
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	list = append(list, c)
	if err := saveCustomers(ctx, uc.store, userID, list); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update reemplaza los campos editables de un cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.CustomerInput) (*entity.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	for i, existing := range list {
		if existing.ID != id {
			continue
		}
		c := uc.fromInput(ctx, userID, in)
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.UpdatedAt = nowISO()
		c.Tasks = existing.Tasks
		c.InvoiceNumber = existing.InvoiceNumber
		c.InvoiceIssueDate = existing.InvoiceIssueDate
		c.InvoiceDueDate = existing.InvoiceDueDate
		c.InvoiceMessage = existing.InvoiceMessage
		c.InvoiceItems = existing.InvoiceItems
		c.InvoiceSenderName = existing.InvoiceSenderName
		c.InvoiceSenderContact = existing.InvoiceSenderContact
		c.InvoiceRecipientName = existing.InvoiceRecipientName
		c.InvoiceRecipientContact = existing.InvoiceRecipientContact
		if len(in.ExtraCharges) == 0 {
			// Sin cargos nuevos: los campos del esquema viejo se conservan
			// tal cual hasta que una edición con cargos los migre.
			c.Costume = existing.Costume
			c.CostumePrice = existing.CostumePrice
			c.HairMakeup = existing.HairMakeup
			c.HairMakeupPrice = existing.HairMakeupPrice
		}
		list[i] = c
		if err := saveCustomers(ctx, uc.store, userID, list); err != nil {
			return nil, err
		}
		return &list[i], nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina un cliente por id.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id string) error {
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return err
	}
	for i, c := range list {
		if c.ID == id {
			list = append(list[:i], list[i+1:]...)
			return saveCustomers(ctx, uc.store, userID, list)
		}
	}
	return domain.ErrNotFound
}

// AddTask añade una tarea al cliente. El texto es obligatorio.
func (uc *CustomerUseCase) AddTask(ctx context.Context, userID, id string, in dto.TaskInput) (*entity.Customer, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, userID, id, func(c *entity.Customer) error {
		c.Tasks = append(c.Tasks, entity.Task{
			ID:   uuid.New().String(),
			Text: strings.TrimSpace(in.Text),
			Due:  in.Due,
		})
		return nil
	})
}

// ToggleTask invierte el estado hecho/pendiente de una tarea.
func (uc *CustomerUseCase) ToggleTask(ctx context.Context, userID, id, taskID string) (*entity.Customer, error) {
	return uc.mutate(ctx, userID, id, func(c *entity.Customer) error {
		for i := range c.Tasks {
			if c.Tasks[i].ID == taskID {
				c.Tasks[i].Done = !c.Tasks[i].Done
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// DeleteTask elimina una tarea del cliente.
func (uc *CustomerUseCase) DeleteTask(ctx context.Context, userID, id, taskID string) (*entity.Customer, error) {
	return uc.mutate(ctx, userID, id, func(c *entity.Customer) error {
		for i := range c.Tasks {
			if c.Tasks[i].ID == taskID {
				c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// InvoiceUsage valores usados al emitir una factura a un cliente.
type InvoiceUsage struct {
	Number           string
	IssueDate        string
	DueDate          string
	Message          string
	SenderName       string
	SenderContact    string
	RecipientName    string
	RecipientContact string
	Items            []entity.InvoiceLine
}

// RecordInvoiceUsage guarda en el cliente los últimos valores usados al
// emitirle una factura, para proponerlos en la siguiente.
func (uc *CustomerUseCase) RecordInvoiceUsage(ctx context.Context, userID, id string, u InvoiceUsage) error {
	_, err := uc.mutate(ctx, userID, id, func(c *entity.Customer) error {
		c.InvoiceNumber = u.Number
		c.InvoiceIssueDate = u.IssueDate
		c.InvoiceDueDate = u.DueDate
		c.InvoiceMessage = u.Message
		c.InvoiceSenderName = u.SenderName
		c.InvoiceSenderContact = u.SenderContact
		c.InvoiceRecipientName = u.RecipientName
		c.InvoiceRecipientContact = u.RecipientContact
		c.InvoiceItems = u.Items
		return nil
	})
	return err
}

// mutate aplica fn sobre el cliente indicado y persiste la lista completa.
func (uc *CustomerUseCase) mutate(ctx context.Context, userID, id string, fn func(*entity.Customer) error) (*entity.Customer, error) {
	list, err := loadCustomers(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if err := fn(&list[i]); err != nil {
			return nil, err
		}
		list[i].UpdatedAt = nowISO()
		if err := saveCustomers(ctx, uc.store, userID, list); err != nil {
			return nil, err
		}
		return &list[i], nil
	}
	return nil, domain.ErrNotFound
}

// fromInput construye la entidad desde el input: resuelve el plan contra el
// catálogo, normaliza y recalcula los campos derivados de precio.
func (uc *CustomerUseCase) fromInput(ctx context.Context, userID string, in dto.CustomerInput) entity.Customer {
	c := entity.Customer{
		Name:           strings.TrimSpace(in.Name),
		Furigana:       in.Furigana,
		Contact:        in.Contact,
		Email:          in.Email,
		Location:       in.Location,
		Notes:          in.Notes,
		InquiryDate:    in.InquiryDate,
		ContractDate:   in.ContractDate,
		MeetingDate:    in.MeetingDate,
		ShootingDate:   in.ShootingDate,
		BillingDate:    in.BillingDate,
		PaymentChecked: in.PaymentChecked,
		AssignedTo:     in.AssignedTo,
		Plan:           in.Plan,
		PlanMasterID:   in.PlanMasterID,
		PlanDetails:    in.PlanDetails,
		ExtraCharges:   in.ExtraCharges,
		Adjustment:     in.Adjustment,
		CustomFields:   in.CustomFields,
	}
	uc.resolvePlan(ctx, userID, &c)
	c = customer.Normalize(c)
	return customer.ApplyPricing(c, in.Revenue)
}

// resolvePlan busca el plan referenciado en el catálogo por nombre. Si no
// aparece (plan renombrado o borrado) se conserva el texto libre del
// registro: la referencia rota no se repara en silencio.
func (uc *CustomerUseCase) resolvePlan(ctx context.Context, userID string, c *entity.Customer) {
	if c.PlanMasterID == "" {
		return
	}
	plans, err := loadPlans(ctx, uc.store, userID)
	if err != nil {
		return
	}
	for _, p := range plans {
		if strings.EqualFold(p.Name, c.PlanMasterID) {
			c.Plan = p.Name
			if c.PlanDetails.PlanName == "" {
				c.PlanDetails.PlanName = p.Name
			}
			if c.PlanDetails.BasePrice == 0 {
				c.PlanDetails.BasePrice = p.Price
			}
			return
		}
	}
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
