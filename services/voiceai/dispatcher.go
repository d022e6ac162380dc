package voiceai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"voicesalon/models"
)

// Args are the arguments of one tool call as decoded from JSON.
type Args map[string]any

// String returns the argument as text. Numbers and booleans are formatted.
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float reads a numeric argument sent either as a number or as a string.
func (a Args) Float(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Language reads "lang", falling back when it is absent.
func (a Args) Language(fallback models.Language) models.Language {
	if raw := a.String("lang"); raw != "" {
		return models.ParseLanguage(raw)
	}
	if fallback == "" {
		return models.LangEnglish
	}
	return fallback
}

// Handler executes one tool in-process and returns the same payload the
// matching REST route responds with.
type Handler func(ctx context.Context, args Args, lang models.Language) (any, error)

// Dispatcher maps tool names to handlers.
type Dispatcher struct {
	handlers map[string]Handler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{handlers: map[string]Handler{}, logger: logger}
}

// Register binds a handler to a tool from the catalog. Names outside the
// catalog are rejected so the exported tool list and the dispatcher agree.
func (d *Dispatcher) Register(name string, h Handler) error {
	if _, ok := Lookup(name); !ok {
		return fmt.Errorf("register %s: not in tool catalog", name)
	}
	d.handlers[name] = h
	return nil
}

// Missing lists catalog tools with no handler.
func (d *Dispatcher) Missing() []string {
	var out []string
	for _, def := range definitions {
		if _, ok := d.handlers[def.Name]; !ok {
			out = append(out, def.Name)
		}
	}
	return out
}

// Execute runs one call. Failures become an unsuccessful result for that
// call only.
func (d *Dispatcher) Execute(ctx context.Context, name string, args Args, fallback models.Language) models.FunctionResult {
	h, ok := d.handlers[name]
	if !ok {
		d.logger.Warn("Unknown function requested", zap.String("function", name))
		return models.FunctionResult{FunctionName: name, Error: "Unknown function: " + name}
	}
	if args == nil {
		args = Args{}
	}

	d.logger.Debug("Executing function", zap.String("function", name))
	result, err := h(ctx, args, args.Language(fallback))
	if err != nil {
		d.logger.Warn("Function failed", zap.String("function", name), zap.Error(err))
		return models.FunctionResult{FunctionName: name, Error: err.Error()}
	}
	return models.FunctionResult{FunctionName: name, Success: true, Result: result}
}

// ExecuteAll runs calls in order.
func (d *Dispatcher) ExecuteAll(ctx context.Context, calls []models.FunctionCall, fallback models.Language) []models.FunctionResult {
	results := make([]models.FunctionResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, d.Execute(ctx, call.Name, Args(call.Args()), fallback))
	}
	return results
}

// SpokenText picks the voice_response of a payload when it has one and
// otherwise returns the payload as JSON.
func SpokenText(payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	var voiced struct {
		VoiceResponse string `json:"voice_response"`
	}
	if err := json.Unmarshal(b, &voiced); err == nil && voiced.VoiceResponse != "" {
		return voiced.VoiceResponse, nil
	}
	return string(b), nil
}

func (d *Dispatcher) Logger() *zap.Logger { return d.logger }
