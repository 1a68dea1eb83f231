package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// SettingSource supplies the site settings that appear in emails.
type SettingSource interface {
	String(ctx context.Context, key setting.Key) string
	VerificationTTL(ctx context.Context) time.Duration
	ResetTTL(ctx context.Context) time.Duration
}

// EmailService renders templates and hands them to a Sender. Site name and
// token lifetimes are read on every send so settings changes apply at once.
type EmailService struct {
	sender    Sender
	templates *TemplateSet
	settings  SettingSource
	baseURL   string
	logger    logger.Interface
}

var _ common.EmailService = (*EmailService)(nil)

func NewEmailService(sender Sender, templates *TemplateSet, settings SettingSource, baseURL string, logger logger.Interface) *EmailService {
	return &EmailService{
		sender:    sender,
		templates: templates,
		settings:  settings,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger,
	}
}

// NewFromConfig picks the SMTP sender, or the logging one when delivery is
// disabled.
func NewFromConfig(cfg config.EmailConfig, baseURL string, settings SettingSource, log logger.Interface) (*EmailService, error) {
	templates, err := LoadTemplates(cfg.TemplatesDir, log)
	if err != nil {
		return nil, err
	}

	var sender Sender
	if cfg.Disabled {
		sender = NewLogSender(log)
		log.Infow("email delivery disabled, messages will be logged")
	} else {
		sender = NewSMTPSender(SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUser,
			Password:    cfg.SMTPPassword,
			FromAddress: cfg.FromAddress,
			FromName:    cfg.FromName,
		})
		log.Infow("email service initialized",
			"host", cfg.SMTPHost,
			"port", cfg.SMTPPort,
			"from", cfg.FromAddress,
		)
	}
	return NewEmailService(sender, templates, settings, baseURL, log), nil
}

func (s *EmailService) SendVerificationEmail(to, token string) error {
	ctx := context.Background()
	return s.send(to, TemplateVerification, map[string]any{
		"SiteName":  s.siteName(ctx),
		"Link":      s.link("/auth/verify-email", token),
		"ExpiresIn": humanDuration(s.settings.VerificationTTL(ctx)),
	})
}

func (s *EmailService) SendPasswordResetEmail(to, token string) error {
	ctx := context.Background()
	return s.send(to, TemplatePasswordReset, map[string]any{
		"SiteName":  s.siteName(ctx),
		"Link":      s.link("/auth/reset-password", token),
		"ExpiresIn": humanDuration(s.settings.ResetTTL(ctx)),
	})
}

func (s *EmailService) SendPasswordChangedEmail(to string) error {
	return s.send(to, TemplatePasswordChanged, map[string]any{
		"SiteName": s.siteName(context.Background()),
	})
}

func (s *EmailService) SendLifecycleNotice(to string, notice common.LifecycleNotice) error {
	return s.send(to, TemplateLifecycleNotice, map[string]any{
		"SiteName":      s.siteName(context.Background()),
		"RecipientName": notice.RecipientName,
		"Kind":          notice.Kind,
		"Title":         notice.Title,
		"Event":         notice.Event,
		"Status":        notice.Status,
		"Notes":         notice.Notes,
	})
}

func (s *EmailService) send(to, name string, data map[string]any) error {
	rendered, err := s.templates.Render(name, data)
	if err != nil {
		s.logger.Errorw("failed to render email", "template", name, "error", err)
		return err
	}
	if err := s.sender.Send(Message{
		To:      to,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Plain:   rendered.Plain,
	}); err != nil {
		s.logger.Warnw("failed to send email", "template", name, "to", utils.MaskEmail(to), "error", err)
		return err
	}
	s.logger.Debugw("email sent", "template", name, "to", utils.MaskEmail(to))
	return nil
}

func (s *EmailService) siteName(ctx context.Context) string {
	if name := s.settings.String(ctx, setting.KeySiteName); name != "" {
		return name
	}
	return "ExpoHub"
}

func (s *EmailService) link(path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", s.baseURL, path, url.QueryEscape(token))
}

func humanDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "soon"
	case d%(24*time.Hour) == 0:
		days := int(d / (24 * time.Hour))
		if days == 1 {
			return "24 hours"
		}
		return fmt.Sprintf("%d days", days)
	case d%time.Hour == 0:
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
}
