// Package correlation produces and decodes the correlation token carried by an order
// across the asynchronous saga stages and downstream calls.
//
// The token is a W3C trace-context traceparent value:
//
//	00-<32 hex trace id>-<16 hex parent id>-<2 hex flags>
//
// It travels as the "traceparent" HTTP header and Kafka record header, and as a plain
// field on the persisted order.
package correlation

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Header is the metadata key the token is sent under.
const Header = "traceparent"

var ErrInvalidToken = errors.New("invalid correlation token")

var propagator = propagation.TraceContext{}

// New returns the token of the span carried by ctx, or a fresh random token when
// ctx has no valid span.
func New(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return format(sc)
	}
	return format(random())
}

func Parse(token string) (trace.SpanContext, error) {
	if token == "" {
		return trace.SpanContext{}, ErrInvalidToken
	}
	carrier := propagation.MapCarrier{Header: token}
	sc := trace.SpanContextFromContext(propagator.Extract(context.Background(), carrier))
	if !sc.IsValid() {
		return trace.SpanContext{}, ErrInvalidToken
	}
	return sc, nil
}

func Valid(token string) bool {
	_, err := Parse(token)
	return err == nil
}

// ContextWith returns ctx carrying the token as the remote parent span.
// An invalid token leaves ctx unchanged.
func ContextWith(ctx context.Context, token string) context.Context {
	sc, err := Parse(token)
	if err != nil {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

func Inject(h http.Header, token string) {
	if token != "" {
		h.Set(Header, token)
	}
}

// FromRequest returns the token sent with r, or "" when absent or malformed.
func FromRequest(r *http.Request) string {
	token := r.Header.Get(Header)
	if !Valid(token) {
		return ""
	}
	return token
}

func format(sc trace.SpanContext) string {
	carrier := propagation.MapCarrier{}
	propagator.Inject(trace.ContextWithSpanContext(context.Background(), sc), carrier)
	return carrier[Header]
}

func random() trace.SpanContext {
	var spanID trace.SpanID
	id := uuid.New()
	copy(spanID[:], id[:8])

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID(uuid.New()),
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
}
