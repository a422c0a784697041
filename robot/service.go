package robot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 * Its fields are set once by NewService; every request, signature and response
 * lives on the stack of a single call, so concurrent sends need no locking
 */

// UseCase defines the send operations, one per message shape
type UseCase interface {
	Send(ctx context.Context, secret, webhook string, msg Message) Result
	SendMarkdown(ctx context.Context, secret, webhook string, msg MarkdownMessage) Result
	SendText(ctx context.Context, secret, webhook string, msg TextMessage) Result
	SendLink(ctx context.Context, secret, webhook string, msg LinkMessage) Result
	SendOverallActionCard(ctx context.Context, secret, webhook string, msg OverallActionCardMessage) Result
	SendIndependentActionCard(ctx context.Context, secret, webhook string, msg IndependentActionCardMessage) Result
	SendFeedCard(ctx context.Context, secret, webhook string, msg FeedCardMessage) Result
}

type Service struct {
	transport Transport
	signer    Signer
	recorder  Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithRecorder reports every send outcome to r
func WithRecorder(r Recorder) Option {
	return func(svc *Service) { svc.recorder = r }
}

func WithLogger(l zerolog.Logger) Option {
	return func(svc *Service) { svc.logger = l }
}

// WithClock sets the time source used for the signature timestamp
func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

// NewService creates a new robot service with dependency injection
func NewService(transport Transport, signer Signer, opts ...Option) *Service {
	s := &Service{
		transport: transport,
		signer:    signer,
		recorder:  nopRecorder{},
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send validates, signs and submits msg to webhook
func (s *Service) Send(ctx context.Context, secret, webhook string, msg Message) Result {
	start := time.Now()
	result := s.send(ctx, secret, webhook, msg)
	result.RequestID = uuid.NewString()

	msgType := "unknown"
	if msg != nil {
		msgType = msg.MsgType().String()
	}
	s.recorder.RecordSend(ctx, msgType, result.Outcome(), time.Since(start))

	var event *zerolog.Event
	if result.Err != nil {
		event = s.logger.Warn().Err(result.Err)
	} else {
		event = s.logger.Info()
	}
	event.
		Str("request_id", result.RequestID).
		Str("msgtype", msgType).
		Int("code", result.Code).
		Str("outcome", result.Outcome()).
		Dur("duration", time.Since(start)).
		Msg("robot message send")

	return result
}

func (s *Service) send(ctx context.Context, secret, webhook string, msg Message) Result {
	if err := requireFields(str("secret", secret), str("webhook", webhook)); err != nil {
		return failure(err)
	}
	if msg == nil {
		return failure(&ValidationError{Field: "msgtype"})
	}
	if err := msg.Validate(); err != nil {
		return failure(err)
	}

	suffix, err := s.signer.Sign(secret, s.now().UnixMilli())
	if err != nil {
		return failure(&CryptoError{Err: err})
	}

	body, err := msg.Payload().Bytes()
	if err != nil {
		return failure(&RemoteSendError{Err: fmt.Errorf("encoding payload: %w", err)})
	}

	if err := s.transport.Submit(ctx, webhook+suffix, body); err != nil {
		return failure(&RemoteSendError{Err: err})
	}

	return success()
}

// SendMarkdown sends a markdown message; empty ContactPersons mentions everyone
func (s *Service) SendMarkdown(ctx context.Context, secret, webhook string, msg MarkdownMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}

// SendText sends a plain text message; empty ContactPersons mentions everyone
func (s *Service) SendText(ctx context.Context, secret, webhook string, msg TextMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}

// SendLink sends a link message
func (s *Service) SendLink(ctx context.Context, secret, webhook string, msg LinkMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}

// SendOverallActionCard sends an action card with a single button
func (s *Service) SendOverallActionCard(ctx context.Context, secret, webhook string, msg OverallActionCardMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}

// SendIndependentActionCard sends an action card with one button per entry
func (s *Service) SendIndependentActionCard(ctx context.Context, secret, webhook string, msg IndependentActionCardMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}

// SendFeedCard sends a list of links
func (s *Service) SendFeedCard(ctx context.Context, secret, webhook string, msg FeedCardMessage) Result {
	return s.Send(ctx, secret, webhook, msg)
}
