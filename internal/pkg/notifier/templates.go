package notifier

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// Template names
const (
	TemplateManagerApproval  = "manager_approval"
	TemplateTripDecided      = "trip_decided"
	TemplateTripExpired      = "trip_expired"
	TemplateEscalation       = "escalation"
	TemplateTripOptimized    = "trip_optimized"
	TemplateProposalRejected = "proposal_rejected"
	TemplateJoinRequested    = "join_requested"
	TemplateJoinDecided      = "join_decided"
)

type template struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

var funcs = map[string]interface{}{
	"when": func(t time.Time) string { return t.Format("Mon 02 Jan 2006 15:04 MST") },
	"idr":  func(v float64) string { return fmt.Sprintf("IDR %.0f", v) },
	"label": func(s models.TripStatus) string {
		return s.Label()
	},
}

func mustTemplate(subject, text, html string) template {
	return template{
		subject: texttemplate.Must(texttemplate.New("subject").Funcs(funcs).Parse(subject)),
		text:    texttemplate.Must(texttemplate.New("text").Funcs(funcs).Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New("html").Funcs(funcs).Parse(html)),
	}
}

var templates = map[string]template{
	TemplateManagerApproval: mustTemplate(
		`{{if .Trip.IsUrgent}}[URGENT] {{end}}Trip approval needed: {{.Trip.RequesterName}} to {{.Trip.Destination}}`,
		`{{.Trip.RequesterName}} requests a trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}}.
Purpose: {{.Trip.Purpose}}
Please respond before {{when .Deadline}}.

Approve: {{.Links.approve}}
Approve (no sharing): {{.Links.approve_solo}}
Reject: {{.Links.reject}}
`,
		`<p>{{.Trip.RequesterName}} requests a trip from <b>{{.Trip.Origin}}</b> to <b>{{.Trip.Destination}}</b> on {{when .Trip.DepartureAt}}.</p>
<p>Purpose: {{.Trip.Purpose}}</p>
<p>Please respond before {{when .Deadline}}.</p>
<p><a href="{{.Links.approve}}">Approve</a> | <a href="{{.Links.approve_solo}}">Approve (no sharing)</a> | <a href="{{.Links.reject}}">Reject</a></p>`,
	),
	TemplateTripDecided: mustTemplate(
		`Your trip to {{.Trip.Destination}} is {{label .Trip.Status}}`,
		`Your trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} is now {{label .Trip.Status}}.
{{with .Reason}}Reason: {{.}}
{{end}}`,
		`<p>Your trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} is now <b>{{label .Trip.Status}}</b>.</p>{{with .Reason}}<p>Reason: {{.}}</p>{{end}}`,
	),
	TemplateTripExpired: mustTemplate(
		`Trip approval expired: {{.Trip.RequesterName}} to {{.Trip.Destination}}`,
		`No manager decision was recorded for the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} (requested by {{.Trip.RequesterName}}).
An administrator can escalate or override it.
`,
		`<p>No manager decision was recorded for the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} (requested by {{.Trip.RequesterName}}).</p><p>An administrator can escalate or override it.</p>`,
	),
	TemplateEscalation: mustTemplate(
		`Escalated trip approval: {{.Trip.RequesterName}} to {{.Trip.Destination}}`,
		`The trip request from {{.Trip.RequesterName}} ({{.Trip.Origin}} to {{.Trip.Destination}}, {{when .Trip.DepartureAt}}) was escalated to you.
Please respond before {{when .Deadline}}.

Approve: {{.Links.approve}}
Approve (no sharing): {{.Links.approve_solo}}
Reject: {{.Links.reject}}
`,
		`<p>The trip request from {{.Trip.RequesterName}} ({{.Trip.Origin}} to {{.Trip.Destination}}, {{when .Trip.DepartureAt}}) was escalated to you.</p>
<p>Please respond before {{when .Deadline}}.</p>
<p><a href="{{.Links.approve}}">Approve</a> | <a href="{{.Links.approve_solo}}">Approve (no sharing)</a> | <a href="{{.Links.reject}}">Reject</a></p>`,
	),
	TemplateTripOptimized: mustTemplate(
		`Your trip to {{.Trip.Destination}} is now shared`,
		`Your trip from {{.Trip.Origin}} to {{.Trip.Destination}} was combined with {{.Others}} other traveller(s).
New departure: {{when .Trip.DepartureAt}}
Vehicle: {{.Trip.VehicleType}}
{{with .Trip.ActualCost}}Your share: {{idr .}}
{{end}}`,
		`<p>Your trip from {{.Trip.Origin}} to {{.Trip.Destination}} was combined with {{.Others}} other traveller(s).</p>
<ul><li>New departure: {{when .Trip.DepartureAt}}</li><li>Vehicle: {{.Trip.VehicleType}}</li>{{with .Trip.ActualCost}}<li>Your share: {{idr .}}</li>{{end}}</ul>`,
	),
	TemplateProposalRejected: mustTemplate(
		`Your trip to {{.Trip.Destination}} will not be shared`,
		`The proposed consolidation for your trip from {{.Trip.Origin}} to {{.Trip.Destination}} was declined. Your original booking stands.
{{with .Reason}}Reason: {{.}}
{{end}}`,
		`<p>The proposed consolidation for your trip from {{.Trip.Origin}} to {{.Trip.Destination}} was declined. Your original booking stands.</p>{{with .Reason}}<p>Reason: {{.}}</p>{{end}}`,
	),
	TemplateJoinRequested: mustTemplate(
		`Join request: {{.Request.RequesterName}} wants to join a trip to {{.Trip.Destination}}`,
		`{{.Request.RequesterName}} ({{.Request.RequesterEmail}}) asked to join the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}}.
Reason: {{.Request.Reason}}
`,
		`<p>{{.Request.RequesterName}} ({{.Request.RequesterEmail}}) asked to join the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}}.</p><p>Reason: {{.Request.Reason}}</p>`,
	),
	TemplateJoinDecided: mustTemplate(
		`Your join request for {{.Trip.Destination}} was {{.Request.Status}}`,
		`Your request to join the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} was {{.Request.Status}}.
{{with .Request.AdminNotes}}Notes: {{.}}
{{end}}`,
		`<p>Your request to join the trip from {{.Trip.Origin}} to {{.Trip.Destination}} on {{when .Trip.DepartureAt}} was <b>{{.Request.Status}}</b>.</p>{{with .Request.AdminNotes}}<p>Notes: {{.}}</p>{{end}}`,
	),
}

// Data feeds the templates. Unused fields stay zero.
type Data struct {
	Trip     *models.Trip
	Request  *models.JoinRequest
	Links    map[string]string
	Deadline time.Time
	Reason   string
	Others   int
}

// Render builds a message from a named template
func Render(name string, to, cc []string, data Data) (models.Message, error) {
	tmpl, ok := templates[name]
	if !ok {
		return models.Message{}, fmt.Errorf("unknown template %q", name)
	}

	var subject, text, html bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return models.Message{}, fmt.Errorf("render %s subject: %w", name, err)
	}
	if err := tmpl.text.Execute(&text, data); err != nil {
		return models.Message{}, fmt.Errorf("render %s text: %w", name, err)
	}
	if err := tmpl.html.Execute(&html, data); err != nil {
		return models.Message{}, fmt.Errorf("render %s html: %w", name, err)
	}

	return models.Message{
		To:       to,
		Cc:       cc,
		Subject:  subject.String(),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
