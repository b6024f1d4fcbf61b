package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// stylePrompts are the per-style instructions forwarded to the remote
// backend.
var stylePrompts = map[Style]string{
	StyleDefinition: "Use definições diretas e claras para cada conceito.",
	StyleQuestion:   "Formule perguntas objetivas com respostas concisas.",
	StyleExample:    "Inclua exemplos práticos e aplicações do mundo real.",
	StyleAnalogy:    "Use analogias criativas para facilitar a memorização.",
}

// RemoteClient calls an HTTP generation backend. Retries stay inside this
// collaborator; callers see a single resolve-or-fail contract.
type RemoteClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

const DefaultMaxRetryAttempts = 3

func NewRemoteClient(endpoint string, maxRetryAttempts uint) *RemoteClient {
	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetHeader("Content-Type", "application/json")

	return &RemoteClient{
		httpClient:       client,
		maxRetryAttempts: maxRetryAttempts,
	}
}

type generateRequestBody struct {
	Topic            string `json:"topic"`
	Quantity         int    `json:"quantity"`
	StyleInstruction string `json:"styleInstruction"`
}

type generateResponseBody struct {
	Flashcards []Card `json:"flashcards"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx server errors and 429 rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// Generate implements the Service interface against the remote backend,
// capping the result at req.Quantity cards.
func (c *RemoteClient) Generate(ctx context.Context, req Request) ([]Card, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var cards []Card
	if err := retry.Do(
		func() error {
			response, err := c.generate(ctx, req)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			cards = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if len(cards) > req.Quantity {
		cards = cards[:req.Quantity]
	}
	return cards, nil
}

func (c *RemoteClient) generate(ctx context.Context, req Request) ([]Card, error) {
	body := generateRequestBody{
		Topic:            req.Topic,
		Quantity:         req.Quantity,
		StyleInstruction: stylePrompts[req.Style],
	}

	var result generateResponseBody
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post() > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return result.Flashcards, nil
}
