package email

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/expohub/expohub/internal/shared/logger"
)

const (
	TemplateVerification    = "verification"
	TemplatePasswordReset   = "password_reset"
	TemplatePasswordChanged = "password_changed"
	TemplateLifecycleNotice = "lifecycle_notice"
)

var templateNames = []string{
	TemplateVerification,
	TemplatePasswordReset,
	TemplatePasswordChanged,
	TemplateLifecycleNotice,
}

//go:embed templates/*.yaml
var builtinTemplates embed.FS

// templateFile is the yaml layout of one email template. Body is markdown
// with text/template placeholders.
type templateFile struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type compiledTemplate struct {
	subject *template.Template
	body    *template.Template
}

// Rendered is a ready to send message body.
type Rendered struct {
	Subject string
	HTML    string
	Plain   string
}

// TemplateSet renders the email templates. Built-in templates can be
// overridden by custom.<name>.yaml files in a directory.
type TemplateSet struct {
	templates map[string]compiledTemplate
	markdown  goldmark.Markdown
	policy    *bluemonday.Policy
	logger    logger.Interface
}

// LoadTemplates compiles the built-in templates and applies overrides from
// dir. An empty or missing dir is not an error.
func LoadTemplates(dir string, log logger.Interface) (*TemplateSet, error) {
	s := &TemplateSet{
		templates: make(map[string]compiledTemplate, len(templateNames)),
		markdown:  goldmark.New(),
		policy:    bluemonday.UGCPolicy(),
		logger:    log,
	}

	for _, name := range templateNames {
		raw, err := builtinTemplates.ReadFile("templates/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in template %s: %w", name, err)
		}
		if err := s.add(name, raw); err != nil {
			return nil, err
		}
	}

	if dir == "" {
		return s, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Warnw("email templates directory not found, using built-in templates", "path", dir)
		return s, nil
	}

	overridden := 0
	for _, name := range templateNames {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, fmt.Sprintf("custom.%s%s", name, ext))
			raw, err := os.ReadFile(path)
			if err != nil {
				if !os.IsNotExist(err) {
					log.Warnw("failed to read email template", "file", path, "error", err)
				}
				continue
			}
			if err := s.add(name, raw); err != nil {
				return nil, err
			}
			log.Infow("loaded custom email template", "template", name, "file", path)
			overridden++
			break
		}
	}
	log.Debugw("email templates ready", "custom", overridden)
	return s, nil
}

func (s *TemplateSet) add(name string, raw []byte) error {
	var f templateFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse email template %s: %w", name, err)
	}
	if strings.TrimSpace(f.Subject) == "" || strings.TrimSpace(f.Body) == "" {
		return fmt.Errorf("email template %s needs a subject and a body", name)
	}
	subject, err := template.New(name + ".subject").Parse(f.Subject)
	if err != nil {
		return fmt.Errorf("failed to compile subject of %s: %w", name, err)
	}
	body, err := template.New(name + ".body").Parse(f.Body)
	if err != nil {
		return fmt.Errorf("failed to compile body of %s: %w", name, err)
	}
	s.templates[name] = compiledTemplate{subject: subject, body: body}
	return nil
}

// Render fills the named template with data. The markdown body becomes the
// plain text part and its sanitized HTML rendering the HTML part.
func (s *TemplateSet) Render(name string, data any) (Rendered, error) {
	t, ok := s.templates[name]
	if !ok {
		return Rendered{}, fmt.Errorf("unknown email template: %s", name)
	}

	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render subject of %s: %w", name, err)
	}
	if err := t.body.Execute(&body, data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render body of %s: %w", name, err)
	}

	var html bytes.Buffer
	if err := s.markdown.Convert(body.Bytes(), &html); err != nil {
		return Rendered{}, fmt.Errorf("failed to convert body of %s: %w", name, err)
	}

	return Rendered{
		// Header injection guard.
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		HTML:    s.policy.Sanitize(html.String()),
		Plain:   strings.TrimSpace(body.String()),
	}, nil
}
