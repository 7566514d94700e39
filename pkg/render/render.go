// Package render wraps a Jinja2-compatible template engine (Pongo2) behind a
// small interface. The core treats it as a black box: template text and a
// variables map in, rendered text or an error out.
package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"
)

// ErrTimeout marks a render that exceeded the caller-supplied deadline.
var ErrTimeout = errors.New("template render timed out")

type Engine interface {
	Render(ctx context.Context, templateText string, vars map[string]interface{}) (string, error)
}

type PongoEngine struct {
	set *pongo2.TemplateSet
}

func NewPongoEngine() *PongoEngine {
	set := pongo2.NewSet("confgen", pongo2.DefaultLoader)
	return &PongoEngine{set: set}
}

// Render compiles and executes the template. A hung execution is abandoned
// when ctx expires; the goroutine is left to finish on its own.
func (e *PongoEngine) Render(ctx context.Context, templateText string, vars map[string]interface{}) (string, error) {
	if ctx.Err() != nil {
		return "", ErrTimeout
	}

	type result struct {
		out string
		err error
	}
	ch := make(chan result, 1)

	go func() {
		tpl, err := e.set.FromString(templateText)
		if err != nil {
			ch <- result{err: fmt.Errorf("template syntax error: %w", err)}
			return
		}
		out, err := tpl.Execute(pongo2.Context(vars))
		if err != nil {
			ch <- result{err: fmt.Errorf("template render error: %w", err)}
			return
		}
		ch <- result{out: out}
	}()

	select {
	case r := <-ch:
		return r.out, r.err
	case <-ctx.Done():
		return "", ErrTimeout
	}
}

// ParseVariables accepts a JSON object, a YAML map, or key=value lines and
// returns a flat variables map. An empty block yields an empty map.
func ParseVariables(text string) (map[string]interface{}, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]interface{}{}, nil
	}

	// YAML is a superset of JSON, so one decode path covers both.
	var m map[string]interface{}
	if err := yaml.Unmarshal([]byte(trimmed), &m); err == nil && m != nil {
		return m, nil
	}

	// Fall back to key=value lines.
	m = map[string]interface{}{}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("variables line %q is neither YAML nor key=value", line)
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m, nil
}

// RowVariables widens a spreadsheet row into a variables map.
func RowVariables(row map[string]string) map[string]interface{} {
	vars := make(map[string]interface{}, len(row))
	for k, v := range row {
		vars[k] = v
	}
	return vars
}
