package documents

// Plantillas de contrato por tipo de sesión. El usuario puede guardar la suya
// propia; estas son los puntos de partida. Los tokens {{...}} se sustituyen al
// generar; un token desconocido se deja tal cual, sin error.
const (
	templateWedding = `PHOTOGRAPHY SERVICE AGREEMENT — WEDDING

This agreement is made on {{today}} between {{company_name}} ("Photographer")
and {{customer_name}} ("Client").

1. SERVICES
The Photographer agrees to provide wedding photography services for the
session scheduled on {{shooting_date}} at {{location}}, under the plan
"{{plan_name}}".

2. FEES
The total fee for the services is {{total_price}}. Payment terms and any
additional charges are listed in the corresponding invoice.

3. DELIVERY
Edited photographs will be delivered within 6 weeks of the session date.

4. CANCELLATION
Cancellations made less than 14 days before the session date forfeit any
deposit paid.

Client contact: {{contact}}

Signed:

_________________________          _________________________
{{company_name}}                   {{customer_name}}`

	templatePortrait = `PHOTOGRAPHY SERVICE AGREEMENT — PORTRAIT SESSION

Date: {{today}}

{{company_name}} agrees to provide portrait photography services to
{{customer_name}} on {{shooting_date}} at {{location}}, under the plan
"{{plan_name}}", for a total of {{total_price}}.

Delivery of edited photographs within 3 weeks of the session.
Client contact: {{contact}}

Signed:

_________________________          _________________________
{{company_name}}                   {{customer_name}}`

	templateCommercial = `COMMERCIAL PHOTOGRAPHY AGREEMENT

Date: {{today}}

This agreement is between {{company_name}} ("Photographer") and
{{customer_name}} ("Client") for commercial photography services on
{{shooting_date}} at {{location}}, plan "{{plan_name}}".

Total fee: {{total_price}}.

Usage rights: the Client receives a non-exclusive commercial license for the
delivered images. The Photographer retains copyright.

Client contact: {{contact}}

Signed:

_________________________          _________________________
{{company_name}}                   {{customer_name}}`
)

// defaultTemplate devuelve la plantilla base para un tipo de contrato.
func defaultTemplate(templateType string) string {
	switch templateType {
	case "portrait":
		return templatePortrait
	case "commercial":
		return templateCommercial
	default:
		return templateWedding
	}
}

// contractTitle título del documento según el tipo.
func contractTitle(templateType string) string {
	switch templateType {
	case "portrait":
		return "Portrait Session Agreement"
	case "commercial":
		return "Commercial Photography Agreement"
	default:
		return "Wedding Photography Agreement"
	}
}
