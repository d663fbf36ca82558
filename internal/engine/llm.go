package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrLLMUnavailable is returned when no LLM client is configured or the
// request could not be completed. Callers switch to offline transforms on it.
var ErrLLMUnavailable = errors.New("llm unavailable")

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// Transient failures are retried with exponential backoff; a missing client
// fails fast with ErrLLMUnavailable.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", ErrLLMUnavailable
	}

	IncrLLMCalls()

	operation := func() (string, error) {
		resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
		if err != nil {
			return "", err
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 8 * time.Second

	raw, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(30*time.Second))
	if err != nil {
		IncrLLMErrors()
		return "", errors.Join(ErrLLMUnavailable, err)
	}
	return stripFences(raw), nil
}

// ExtractJSONBlock pulls a JSON object out of free-form LLM text: a fenced
// code block (labeled or not) wins, otherwise the substring between the first
// '{' and the last '}'. Returns "" when no JSON-shaped substring exists;
// callers treat that as a parse failure.
func ExtractJSONBlock(raw string) string {
	if i := strings.Index(raw, "```"); i >= 0 {
		rest := raw[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 && !strings.ContainsAny(rest[:nl], "{}") {
			rest = rest[nl+1:] // drop a language label like "json"
		}
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		raw = rest
	}

	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return ""
	}
	return strings.TrimSpace(raw[start : end+1])
}
