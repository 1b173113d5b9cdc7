package ipreport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"Employee-Attendance-Portal/models"
)

// Sender posts this machine's private address to a reporting endpoint,
// retrying with jittered exponential backoff.
type Sender struct {
	Endpoint    string
	Client      *http.Client
	MaxAttempts int
	Timeout     time.Duration
	// InitialInterval is the first retry delay.
	InitialInterval time.Duration
}

func NewSender(endpoint string) *Sender {
	return &Sender{
		Endpoint:        endpoint,
		Client:          &http.Client{},
		MaxAttempts:     5,
		Timeout:         5 * time.Second,
		InitialInterval: time.Second,
	}
}

func (s *Sender) Send(ctx context.Context, privateIP string) error {
	body, err := json.Marshal(models.IPReportPayload{PrivateIP: privateIP})
	if err != nil {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.InitialInterval
	b.RandomizationFactor = 0.5
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	attempts := s.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)

	attempt := 0
	op := func() error {
		attempt++
		err := s.post(ctx, body)
		if err != nil {
			log.Printf("ipreport: attempt %d/%d to %s failed: %v", attempt, attempts, s.Endpoint, err)
		}
		return err
	}
	if err := backoff.Retry(op, policy); err != nil {
		return fmt.Errorf("failed to report %s after %d attempt(s): %w", privateIP, attempt, err)
	}
	log.Printf("ipreport: reported %s to %s", privateIP, s.Endpoint)
	return nil
}

func (s *Sender) post(ctx context.Context, body []byte) error {
	reqCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return backoff.Permanent(fmt.Errorf("endpoint answered %d", resp.StatusCode))
	default:
		return fmt.Errorf("endpoint answered %d", resp.StatusCode)
	}
}
