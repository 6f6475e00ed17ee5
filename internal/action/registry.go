package action

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"rover/internal/telemetry"
)

// Handler runs an action. It executes on the UI event loop and may return a
// command for Bubble Tea to run afterwards.
type Handler func(ctx context.Context) tea.Cmd

// Registry maps actions to handlers.
type Registry struct {
	handlers map[Action]Handler
	log      zerolog.Logger
	tracer   oteltrace.Tracer
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for unknown and unbound actions.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithTracer overrides the tracer used for dispatch spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(r *Registry) { r.tracer = t }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[Action]Handler),
		log:      zerolog.Nop(),
		tracer:   telemetry.Tracer("action"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bind registers h for a, replacing any previous handler.
// Binding Unknown or a nil handler is ignored.
func (r *Registry) Bind(a Action, h Handler) {
	if a == Unknown || h == nil {
		return
	}
	r.handlers[a] = h
}

// Lookup returns the handler bound to a.
func (r *Registry) Lookup(a Action) (Handler, bool) {
	h, ok := r.handlers[a]
	return h, ok
}

// Dispatch invokes the handler for a. Unknown or unbound actions are logged
// and produce no command.
func (r *Registry) Dispatch(ctx context.Context, a Action) tea.Cmd {
	return r.dispatch(ctx, a, a.String())
}

// DispatchName parses name and dispatches it. The raw name is kept for
// logging when it is not a known action.
func (r *Registry) DispatchName(ctx context.Context, name string) tea.Cmd {
	return r.dispatch(ctx, Parse(name), name)
}

func (r *Registry) dispatch(ctx context.Context, a Action, name string) tea.Cmd {
	ctx, span := r.tracer.Start(ctx, "action.dispatch",
		oteltrace.WithAttributes(telemetry.KeyAction.String(name)))
	defer span.End()

	if a == Unknown {
		r.log.Warn().Str("action", name).Msg("unknown action")
		span.SetAttributes(telemetry.KeyOutcome.String("unknown"))
		return nil
	}
	h, ok := r.handlers[a]
	if !ok {
		r.log.Warn().Str("action", name).Msg("action has no handler")
		span.SetAttributes(telemetry.KeyOutcome.String("unbound"))
		return nil
	}
	cmd := safeRun(ctx, h, func(p any) {
		r.log.Error().Str("action", name).Interface("panic", p).Msg("action handler panicked")
		span.SetStatus(codes.Error, "handler panicked")
	})
	span.SetAttributes(telemetry.KeyOutcome.String("invoked"))
	return cmd
}

// safeRun converts a handler panic into a nil command.
func safeRun(ctx context.Context, h Handler, onPanic func(any)) (cmd tea.Cmd) {
	defer func() {
		if p := recover(); p != nil {
			onPanic(p)
			cmd = nil
		}
	}()
	return h(ctx)
}
