package usecase

import (
	"sort"
	"strings"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// FilterCustomers aplica los filtros del listado en orden: texto libre,
// estado de pago, mes de sesión y asignado. Devuelve una lista nueva.
func FilterCustomers(list []entity.Customer, req dto.FilterRequest) []entity.Customer {
	query := strings.ToLower(strings.TrimSpace(req.Query))
	out := make([]entity.Customer, 0, len(list))
	for _, c := range list {
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		switch req.Payment {
		case "paid":
			if !c.PaymentChecked {
				continue
			}
		case "unpaid":
			if c.PaymentChecked {
				continue
			}
		}
		if req.Month != "" && req.Month != "all" && !strings.HasPrefix(c.ShootingDate, req.Month) {
			continue
		}
		if req.AssignedTo != "" && req.AssignedTo != "all" && c.AssignedTo != req.AssignedTo {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesQuery busca la subcadena en nombre, furigana y contacto, sin
// distinguir mayúsculas.
func matchesQuery(c entity.Customer, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Furigana), query) ||
		strings.Contains(strings.ToLower(c.Contact), query)
}

// SortCustomers ordena una copia de la lista por la clave dada. La ordenación
// es estable: elementos con la misma clave conservan su orden relativo.
// revenue compara numéricamente, paymentChecked pone no-pagados primero en
// asc, el resto compara como texto sin distinguir mayúsculas.
func SortCustomers(list []entity.Customer, key, dir string) []entity.Customer {
	if key == "" {
		return list
	}
	out := make([]entity.Customer, len(list))
	copy(out, list)
	desc := dir == "desc"

	less := func(a, b entity.Customer) bool {
		switch key {
		case "revenue":
			return a.Revenue < b.Revenue
		case "paymentChecked":
			return boolRank(a.PaymentChecked) < boolRank(b.PaymentChecked)
		default:
			return strings.ToLower(fieldString(a, key)) < strings.ToLower(fieldString(b, key))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fieldString(c entity.Customer, key string) string {
	switch key {
	case "name":
		return c.Name
	case "furigana":
		return c.Furigana
	case "contact":
		return c.Contact
	case "plan":
		return c.Plan
	case "inquiryDate":
		return c.InquiryDate
	case "contractDate":
		return c.ContractDate
	case "meetingDate":
		return c.MeetingDate
	case "shootingDate":
		return c.ShootingDate
	case "billingDate":
		return c.BillingDate
	case "assignedTo":
		return c.AssignedTo
	case "location":
		return c.Location
	}
	return ""
}

// TotalRevenue suma el revenue de la lista (para la fila de totales del listado).
func TotalRevenue(list []entity.Customer) float64 {
	var total float64
	for _, c := range list {
		total += c.Revenue
	}
	return total
}
