// Package notification turns completion events into result-summary emails.
package notification

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// Mailer delivers one composed email.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// assessmentNames maps assessment type ids to the names used in email copy.
var assessmentNames = map[string]string{
	"cirf":    "Cultural Innovation Resilience Framework",
	"cimm":    "Cultural Innovation Maturity Model",
	"cira":    "Cultural Innovation Readiness Assessment",
	"tbl":     "Triple Bottom Line Assessment",
	"ciss":    "Cultural Innovation Sustainability Scorecard",
	"pricing": "Pricing Strategy Assessment",
}

// bandDescriptions give the one-line summary per interpretation band, keyed
// by the lowercased band name.
var bandDescriptions = map[string]string{
	"nascent":     "Your resilience foundations are just forming. The recommendations in your results highlight where to start.",
	"developing":  "You have real building blocks in place. Focused effort on your weakest areas will compound quickly.",
	"established": "Your organization shows solid resilience across most areas. The remaining gaps are well within reach.",
	"thriving":    "Your organization demonstrates exceptional resilience. Keep investing in the practices that got you here.",
}

var textTmpl = template.Must(template.New("text").Parse(`Hello,

Your {{.Assessment}} results are ready.

Overall score: {{printf "%.1f" .Score}} / 100 ({{.Band}})

{{.BandDescription}}
{{if .Unlocked}}
Completing this assessment unlocked: {{.Unlocked}}.
{{end}}{{if .Resources}}
New downloadable resources are waiting in your library: {{.Resources}}.
{{end}}
View your full results, recommendations, and case studies in your dashboard.

The CulturIQ Team
`))

var htmlTmpl = template.Must(template.New("html").Parse(`<html><body>
<p>Hello,</p>
<p>Your <strong>{{.Assessment}}</strong> results are ready.</p>
<p>Overall score: <strong>{{printf "%.1f" .Score}} / 100</strong> ({{.Band}})</p>
<p>{{.BandDescription}}</p>
{{if .Unlocked}}<p>Completing this assessment unlocked: {{.Unlocked}}.</p>{{end}}
{{if .Resources}}<p>New downloadable resources are waiting in your library: {{.Resources}}.</p>{{end}}
<p>View your full results, recommendations, and case studies in your dashboard.</p>
<p>The CulturIQ Team</p>
</body></html>
`))

type summaryData struct {
	Assessment      string
	Score           float64
	Band            string
	BandDescription string
	Unlocked        string
	Resources       string
}

// Service handles completion events from the worker's consumer.
type Service struct {
	mailer Mailer
	log    logging.Logger
}

func NewService(mailer Mailer, log logging.Logger) *Service {
	return &Service{mailer: mailer, log: log}
}

// HandleCompletion composes and sends the result-summary email.  Events
// without a respondent email are acknowledged without sending.
func (s *Service) HandleCompletion(ctx context.Context, event appasmt.CompletionEvent) error {
	if event.Email == "" {
		s.log.Debug("completion event has no email, skipping summary",
			logging.String("event_id", event.EventID),
			logging.String("respondent_id", event.RespondentID))
		return nil
	}

	subject, textBody, htmlBody, err := composeSummary(event)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, event.Email, subject, textBody, htmlBody); err != nil {
		return errors.Wrap(err, errors.ErrCodeNotifyDispatchFailed,
			"failed to dispatch result summary")
	}
	s.log.Info("result summary sent",
		logging.String("event_id", event.EventID),
		logging.String("respondent_id", event.RespondentID),
		logging.String("assessment_type", event.AssessmentType))
	return nil
}

func composeSummary(event appasmt.CompletionEvent) (subject, textBody, htmlBody string, err error) {
	name, ok := assessmentNames[event.AssessmentType]
	if !ok {
		name = strings.ToUpper(event.AssessmentType) + " Assessment"
	}

	data := summaryData{
		Assessment:      name,
		Score:           event.OverallScore,
		Band:            event.Band,
		BandDescription: bandDescriptions[strings.ToLower(event.Band)],
		Unlocked:        joinNames(event.UnlockedAssessments),
		Resources:       strings.Join(event.GrantedResources, ", "),
	}

	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", "", errors.Wrap(err, errors.ErrCodeSerialization, "failed to render text body")
	}
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", "", errors.Wrap(err, errors.ErrCodeSerialization, "failed to render html body")
	}

	return "Your " + name + " results", text.String(), html.String(), nil
}

func joinNames(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := assessmentNames[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
