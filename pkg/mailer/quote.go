package mailer

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/landtekbiz/treetek-backend/models"
)

// quoteEmailData flattens a ServiceRequest for the two quote templates.
type quoteEmailData struct {
	models.ServiceRequest
	PreferredDateDisplay string
	EmergencyPhone       string
	BusinessEmail        string
}

var tmplFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

var operatorAlertTmpl = template.Must(template.New("operator_alert").Funcs(tmplFuncs).Parse(`
<h2>New Service Request</h2>
<p><strong>Urgency:</strong> {{.Urgency}}</p>
<hr>
<h3>Customer Information</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<hr>
<h3>Service Details</h3>
<p><strong>Service Type:</strong> {{.ServiceType}}</p>
<p><strong>Address:</strong> {{.Address}}, {{.City}}, {{.Zip}}</p>
{{if .PreferredDateDisplay}}<p><strong>Preferred Date:</strong> {{.PreferredDateDisplay}}</p>
{{end}}<p><strong>Description:</strong><br>{{.Description}}</p>
{{if .Photos}}<p><strong>Photos:</strong> {{range $i, $u := .Photos}}{{if $i}} | {{end}}<a href="{{$u}}">Photo {{inc $i}}</a>{{end}}</p>
{{end}}`))

var customerAckTmpl = template.Must(template.New("customer_ack").Parse(`
<h2>Thank You for Contacting TREE TEK</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out to TREE TEK! We've received your request for <strong>{{.ServiceType}}</strong> and will contact you soon at <strong>{{.Phone}}</strong>.</p>
<p>If this is an emergency, please call us directly at <strong>{{.EmergencyPhone}}</strong>.</p>
<br>
<p>&mdash; TREE TEK Team<br>
{{.BusinessEmail}}</p>
`))

func newQuoteEmailData(req models.ServiceRequest, emergencyPhone, businessEmail string) quoteEmailData {
	data := quoteEmailData{
		ServiceRequest: req,
		EmergencyPhone: emergencyPhone,
		BusinessEmail:  businessEmail,
	}
	if req.PreferredDate != nil {
		data.PreferredDateDisplay = req.PreferredDate.Format("January 2, 2006")
	}
	return data
}

// SendOperatorAlert mails the full submission to the configured alert address.
func (m *Mailer) SendOperatorAlert(ctx context.Context, to string, req models.ServiceRequest, emergencyPhone, businessEmail string) error {
	var body strings.Builder
	if err := operatorAlertTmpl.Execute(&body, newQuoteEmailData(req, emergencyPhone, businessEmail)); err != nil {
		return fmt.Errorf("render operator alert: %w", err)
	}
	subject := fmt.Sprintf("New TREE TEK Service Request – %s – %s", req.ServiceType, req.Name)
	return m.Send(ctx, to, subject, body.String())
}

// SendCustomerAck mails the receipt confirmation to the submitted address.
func (m *Mailer) SendCustomerAck(ctx context.Context, req models.ServiceRequest, emergencyPhone, businessEmail string) error {
	var body strings.Builder
	if err := customerAckTmpl.Execute(&body, newQuoteEmailData(req, emergencyPhone, businessEmail)); err != nil {
		return fmt.Errorf("render customer ack: %w", err)
	}
	subject := "TREE TEK – We've received your service request!"
	return m.Send(ctx, req.Email, subject, body.String())
}
