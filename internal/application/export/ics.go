package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// Etiquetas de hito para el resumen del evento.
var milestoneLabels = map[string]string{
	entity.MilestoneInquiry:  "Inquiry",
	entity.MilestoneContract: "Contract",
	entity.MilestoneMeeting:  "Meeting",
	entity.MilestoneShooting: "Shooting",
	entity.MilestoneBilling:  "Billing",
}

// Hitos que generan eventos de calendario, en orden fijo dentro de un mismo
// cliente. La fecha de contrato no aparece en el calendario, así que tampoco
// se exporta.
var calendarMilestones = []string{
	entity.MilestoneInquiry,
	entity.MilestoneMeeting,
	entity.MilestoneShooting,
	entity.MilestoneBilling,
}

// BuildCalendarICS genera un calendario iCalendar con un VEVENT de día
// completo por cada hito activo de cada cliente dentro del mes pedido
// ("YYYY-MM"; vacío usa el mes de now). Devuelve el archivo y el número de
// eventos emitidos. Las fechas que no se pueden interpretar se omiten en
// silencio.
func BuildCalendarICS(customers []entity.Customer, filters entity.CalendarFilters, month string, now time.Time) ([]byte, int) {
	if month == "" {
		month = now.Format("2006-01")
	}

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//PhotoCRM//Calendar Export//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:PhotoCRM Calendar")

	stamp := now.UTC().Format("20060102T150405Z")
	count := 0

	for _, c := range customers {
		dates := c.MilestoneDates()
		for _, milestone := range calendarMilestones {
			date, ok := dates[milestone]
			if !ok || !filters.Show(milestone) {
				continue
			}
			day, err := parseDay(date)
			if err != nil || day.Format("2006-01") != month {
				continue
			}
			writeLine(&b, "BEGIN:VEVENT")
			writeLine(&b, fmt.Sprintf("UID:%s-%s-%s@photocrm", c.ID, milestone, day.Format("20060102")))
			writeLine(&b, "DTSTAMP:"+stamp)
			writeLine(&b, "DTSTART;VALUE=DATE:"+day.Format("20060102"))
			writeLine(&b, "DTEND;VALUE=DATE:"+day.AddDate(0, 0, 1).Format("20060102"))
			writeLine(&b, "SUMMARY:"+escapeText(fmt.Sprintf("[%s] %s", milestoneLabels[milestone], c.Name)))
			writeLine(&b, "DESCRIPTION:"+escapeText(eventDescription(c)))
			writeLine(&b, "STATUS:CONFIRMED")
			writeLine(&b, "TRANSP:OPAQUE")
			writeLine(&b, "END:VEVENT")
			count++
		}
	}

	writeLine(&b, "END:VCALENDAR")
	return []byte(b.String()), count
}

func eventDescription(c entity.Customer) string {
	var parts []string
	if c.Plan != "" {
		parts = append(parts, "Plan: "+c.Plan)
	}
	if c.Location != "" {
		parts = append(parts, "Location: "+c.Location)
	}
	if c.Contact != "" {
		parts = append(parts, "Contact: "+c.Contact)
	}
	if c.Notes != "" {
		parts = append(parts, c.Notes)
	}
	return strings.Join(parts, "\n")
}

// parseDay interpreta la fecha con tolerancia de formato.
func parseDay(date string) (time.Time, error) {
	return dateparse.ParseAny(date)
}

// escapeText escapa un valor de texto iCalendar (RFC 5545 3.3.11):
// backslash, punto y coma, coma y salto de línea.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// writeLine emite una línea con final CRLF como pide el RFC.
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}
