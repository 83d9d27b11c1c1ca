package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	nrpkg "github.com/piresc/nebengdinas/internal/pkg/newrelic"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers messages through an SMTP relay with gomail
type SMTPSender struct {
	cfg      models.SMTPConfig
	breakers *circuitbreaker.Manager
	send     func(m *gomail.Message) error
}

// NewSMTPSender creates a sender for cfg. Sends run through the smtp
// circuit breaker when breakers is not nil.
func NewSMTPSender(cfg models.SMTPConfig, breakers *circuitbreaker.Manager) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPSender{
		cfg:      cfg,
		breakers: breakers,
		send:     func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// IsConfigured reports whether a relay and sender address are set
func (s *SMTPSender) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.From != ""
}

// Send delivers msg. Relay failures are returned as TransientError.
func (s *SMTPSender) Send(ctx context.Context, msg models.Message) error {
	if len(msg.To) == 0 {
		return apperror.ValidationError{Field: "to", Msg: "at least one recipient is required"}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetDateHeader("Date", time.Now())
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	deliver := func(ctx context.Context) error {
		return nrpkg.WithExternalSegment(ctx, "gomail", "send", fmt.Sprintf("smtp://%s:%d", s.cfg.Host, s.cfg.Port), func() error {
			return s.send(m)
		})
	}

	var err error
	if s.breakers != nil {
		err = s.breakers.Execute(ctx, circuitbreaker.SMTP, deliver)
	} else {
		err = deliver(ctx)
	}
	if err != nil {
		return apperror.TransientError{Op: "smtp send", Err: err}
	}
	return nil
}
