package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/export"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

var icsNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestBuildCalendarICS_UnEventoPorHitoActivo(t *testing.T) {
	customers := []entity.Customer{{
		ID:           "c1",
		Name:         "Tanaka",
		InquiryDate:  "2024-05-02",
		ShootingDate: "2024-05-10",
	}}

	out, count := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "2024-05", icsNow)
	s := string(out)

	assert.Equal(t, 2, count)
	assert.Contains(t, s, "BEGIN:VCALENDAR\r\n")
	assert.Contains(t, s, "METHOD:PUBLISH")
	assert.Contains(t, s, "X-WR-CALNAME:PhotoCRM Calendar")
	assert.Contains(t, s, "UID:c1-inquiry-20240502@photocrm")
	assert.Contains(t, s, "UID:c1-shooting-20240510@photocrm")
	assert.Contains(t, s, "DTSTART;VALUE=DATE:20240510")
	assert.Contains(t, s, "DTEND;VALUE=DATE:20240511", "evento de día completo: fin al día siguiente")
	assert.Contains(t, s, "SUMMARY:[Shooting] Tanaka")
	assert.Contains(t, s, "STATUS:CONFIRMED")
	assert.True(t, strings.HasSuffix(s, "END:VCALENDAR\r\n"))
}

func TestBuildCalendarICS_SoloElMesPedido(t *testing.T) {
	customers := []entity.Customer{{
		ID:           "c1",
		Name:         "Tanaka",
		InquiryDate:  "2024-04-01",
		ShootingDate: "2024-05-10",
	}}

	out, count := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "2024-05", icsNow)
	require.Equal(t, 1, count)
	assert.NotContains(t, string(out), "inquiry", "el hito de otro mes no entra en el archivo")
}

func TestBuildCalendarICS_MesVacioUsaElActual(t *testing.T) {
	customers := []entity.Customer{{ID: "c1", Name: "Tanaka", ShootingDate: "2024-05-10"}}

	_, count := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "", icsNow)
	assert.Equal(t, 1, count, "sin mes pedido se exporta el mes de la fecha actual")
}

func TestBuildCalendarICS_RespetaFiltros(t *testing.T) {
	customers := []entity.Customer{{
		ID:           "c1",
		Name:         "Tanaka",
		InquiryDate:  "2024-05-02",
		ShootingDate: "2024-05-10",
	}}
	filters := entity.CalendarFilters{Shooting: true} // solo sesiones

	out, count := export.BuildCalendarICS(customers, filters, "2024-05", icsNow)
	assert.Equal(t, 1, count)
	assert.NotContains(t, string(out), "inquiry")
}

func TestBuildCalendarICS_FechaDeContratoNoSeExporta(t *testing.T) {
	customers := []entity.Customer{{ID: "c1", Name: "Tanaka", ContractDate: "2024-05-03"}}

	_, count := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "2024-05", icsNow)
	assert.Zero(t, count, "la fecha de contrato no genera eventos de calendario")
}

func TestBuildCalendarICS_FechaIlegibleSeOmite(t *testing.T) {
	customers := []entity.Customer{{ID: "c1", Name: "Tanaka", ShootingDate: "cuando se pueda"}}
	_, count := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "2024-05", icsNow)
	assert.Zero(t, count)
}

func TestBuildCalendarICS_EscapaTexto(t *testing.T) {
	customers := []entity.Customer{{
		ID:           "c1",
		Name:         "Tanaka, Yuki; photo",
		ShootingDate: "2024-05-10",
		Notes:        "line1\nline2",
	}}

	out, _ := export.BuildCalendarICS(customers, entity.DefaultCalendarFilters(), "2024-05", icsNow)
	s := string(out)
	assert.Contains(t, s, `SUMMARY:[Shooting] Tanaka\, Yuki\; photo`)
	assert.Contains(t, s, `line1\nline2`)
}
