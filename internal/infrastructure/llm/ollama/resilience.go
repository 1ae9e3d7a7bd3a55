package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/resilience"
)

type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "ollama status error"
	}
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("ollama %s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("ollama %s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Body))
}

func classifyOllamaError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{
			Retryable:     false,
			RecordFailure: false,
		}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{
			Retryable:     true,
			RecordFailure: true,
		}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if isRetryableHTTPStatus(statusErr.StatusCode) {
			return resilience.ErrorClassification{
				Retryable:     true,
				RecordFailure: true,
			}
		}
		return resilience.ErrorClassification{
			Retryable:     false,
			RecordFailure: false,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{
			Retryable:     true,
			RecordFailure: true,
		}
	}

	return resilience.ErrorClassification{
		Retryable:     false,
		RecordFailure: true,
	}
}

func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		return err
	}

	class := classifyOllamaError(err)
	if class.Retryable || resilience.IsCircuitOpen(err) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// ResilientEmbedder runs the embedding oracle under retry and circuit
// breaking, keyed per operation so embed failures do not trip completion.
type ResilientEmbedder struct {
	inner *Embedder
	exec  *resilience.Executor
}

func NewResilientEmbedder(inner *Embedder, exec *resilience.Executor) *ResilientEmbedder {
	return &ResilientEmbedder{inner: inner, exec: exec}
}

func (r *ResilientEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	var out [][]float32
	err := r.exec.Execute(ctx, "ollama_embed", func(ctx context.Context) error {
		vectors, err := r.inner.Embed(ctx, texts)
		if err != nil {
			return err
		}
		out = vectors
		return nil
	}, classifyOllamaError)
	return out, wrapTemporaryIfNeeded("ollama embed", err)
}

// ResilientCompleter wraps the completion oracle the same way.
type ResilientCompleter struct {
	inner *Completer
	exec  *resilience.Executor
}

func NewResilientCompleter(inner *Completer, exec *resilience.Executor) *ResilientCompleter {
	return &ResilientCompleter{inner: inner, exec: exec}
}

func (r *ResilientCompleter) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var out string
	err := r.exec.Execute(ctx, "ollama_generate", func(ctx context.Context) error {
		resp, err := r.inner.CompleteJSON(ctx, systemPrompt, userPrompt)
		if err != nil {
			return err
		}
		out = resp
		return nil
	}, classifyOllamaError)
	return out, wrapTemporaryIfNeeded("ollama generate", err)
}
