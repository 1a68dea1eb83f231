package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/expohub/expohub/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Plain   string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(msg Message) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPSender delivers mail through an SMTP relay.
type SMTPSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPSender) Send(msg Message) error {
	if s.config.Host == "" {
		return ErrEmailServiceNotConfigured
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Plain)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogSender writes messages to the log instead of sending them. It is used
// when delivery is disabled.
type LogSender struct {
	logger logger.Interface
}

func NewLogSender(logger logger.Interface) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(msg Message) error {
	s.logger.Infow("email delivery disabled, message logged",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Plain,
	)
	return nil
}
