// Package blessing produces the personalised New Year blessing shown after a
// wish is made. Generation failures never surface: the caller always gets text.
package blessing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/pthm-cable/wishsky/config"
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// errNoGenerator is reported when no backend is configured.
var errNoGenerator = errors.New("no generator configured")

// Service renders the prompt, calls the generator and substitutes a fallback
// on any failure.
type Service struct {
	gen       Generator
	prompt    *template.Template
	fallbacks []string
	timeout   time.Duration
}

// NewService creates a service. gen may be nil, in which case every request
// returns a fallback.
func NewService(cfg *config.Config, gen Generator) (*Service, error) {
	tmpl, err := template.New("blessing").Option("missingkey=error").Parse(cfg.Blessing.Prompt)
	if err != nil {
		return nil, fmt.Errorf("parsing blessing prompt: %w", err)
	}
	if len(cfg.Blessing.Fallbacks) == 0 {
		return nil, errors.New("blessing fallbacks are empty")
	}
	return &Service{
		gen:       gen,
		prompt:    tmpl,
		fallbacks: cfg.Blessing.Fallbacks,
		timeout:   cfg.Derived.BlessingTimeout,
	}, nil
}

// Prompt renders the prompt for a wish.
func (s *Service) Prompt(name, content string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Name, Content string }{name, content}
	if err := s.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering blessing prompt: %w", err)
	}
	return buf.String(), nil
}

// Bless returns the generated blessing, or a fallback if generation fails,
// times out or returns nothing. Never returns an empty string.
func (s *Service) Bless(ctx context.Context, name, content string) string {
	text, err := s.generate(ctx, name, content)
	if err != nil {
		slog.Warn("blessing fallback", "reason", err.Error(), "name", name)
		return s.fallback(1)
	}
	if text == "" {
		slog.Warn("blessing fallback", "reason", "empty response", "name", name)
		return s.fallback(0)
	}
	slog.Info("blessing generated", "name", name, "chars", len(text))
	return text
}

func (s *Service) generate(ctx context.Context, name, content string) (string, error) {
	if s.gen == nil {
		return "", errNoGenerator
	}
	prompt, err := s.Prompt(name, content)
	if err != nil {
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating blessing: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// fallback returns the i-th fallback, wrapping around short lists.
// Index 0 covers empty responses, index 1 covers errors.
func (s *Service) fallback(i int) string {
	return s.fallbacks[i%len(s.fallbacks)]
}

// Request runs Bless on its own goroutine. The returned channel receives
// exactly one value and is buffered, so an abandoned request never leaks.
func (s *Service) Request(ctx context.Context, name, content string) <-chan string {
	out := make(chan string, 1)
	go func() {
		out <- s.Bless(ctx, name, content)
	}()
	return out
}
