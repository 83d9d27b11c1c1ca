package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func testSMTPConfig() models.SMTPConfig {
	return models.SMTPConfig{Host: "smtp.corp.id", Port: 587, From: "trips@corp.id"}
}

func TestSMTPSender_IsConfigured(t *testing.T) {
	assert.True(t, NewSMTPSender(testSMTPConfig(), nil).IsConfigured())
	assert.False(t, NewSMTPSender(models.SMTPConfig{Host: "smtp.corp.id"}, nil).IsConfigured())
}

func TestSMTPSender_Send(t *testing.T) {
	sender := NewSMTPSender(testSMTPConfig(), nil)

	var captured *gomail.Message
	sender.send = func(m *gomail.Message) error {
		captured = m
		return nil
	}

	err := sender.Send(context.Background(), models.Message{
		To:       []string{"rina@corp.id"},
		Cc:       []string{"boss@corp.id"},
		Subject:  "Trip approved",
		TextBody: "plain",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"trips@corp.id"}, captured.GetHeader("From"))
	assert.Equal(t, []string{"rina@corp.id"}, captured.GetHeader("To"))
	assert.Equal(t, []string{"boss@corp.id"}, captured.GetHeader("Cc"))
	assert.Equal(t, []string{"Trip approved"}, captured.GetHeader("Subject"))

	var raw strings.Builder
	_, err = captured.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/html")
}

func TestSMTPSender_FailureIsTransient(t *testing.T) {
	breakers := circuitbreaker.NewManager(circuitbreaker.Config{FailureThreshold: 1, OpenTimeout: time.Minute}, nil)
	sender := NewSMTPSender(testSMTPConfig(), breakers)
	sender.send = func(*gomail.Message) error { return errors.New("421 service not available") }

	msg := models.Message{To: []string{"a@corp.id"}, Subject: "s", TextBody: "b"}

	err := sender.Send(context.Background(), msg)
	assert.True(t, apperror.IsTransient(err))

	err = sender.Send(context.Background(), msg)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
}

func TestSMTPSender_NoRecipients(t *testing.T) {
	err := NewSMTPSender(testSMTPConfig(), nil).Send(context.Background(), models.Message{Subject: "x"})
	assert.True(t, apperror.IsValidation(err))
}
