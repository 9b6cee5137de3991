// Package formsync polls the external forms system for submissions matching
// open participation attempts and records the submission reference on the
// attempt. It never verifies or pays; rewards move only through the
// participation service.
package formsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/felend/felend/internal/config"
	"github.com/felend/felend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/felend/felend/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingAttempts sync.Map

type Response struct {
	Participation int       `json:"participation"`
	Status        string    `json:"status"`
	ResponseID    string    `json:"response_id,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at,omitempty"`
}

type Repo interface {
	FindUnverified(ctx context.Context, limit uint32) ([]domain.Participation, error)
	RecordExternal(ctx context.Context, participationID int, externalID string, externalAt time.Time) error
}

type Service struct {
	url            string
	repo           Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.FormsAddress,
		repo:           repo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Form sync service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processAttempts(ctx)
		}
	}
}

func (s *Service) processAttempts(ctx context.Context) {
	attempts, err := s.repo.FindUnverified(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch attempts for sync", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, attempt := range attempts {
		attempt := attempt

		if _, loaded := processingAttempts.LoadOrStore(attempt.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingAttempts.Delete(attempt.ID)
				return s.handleAttempt(ctx, attempt)
			})
			if err != nil {
				processingAttempts.Delete(attempt.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing attempts", zap.Error(err))
	}
}

func (s *Service) handleAttempt(ctx context.Context, attempt domain.Participation) error {
	url := s.url + "/api/responses/" + strconv.Itoa(attempt.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for retry := 1; retry <= maxRetries; retry++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if retry < maxRetries {
					time.Sleep(retryInterval * time.Duration(retry))
					continue
				}
				return fmt.Errorf("failed to sync attempt %d after %d retries: %w", attempt.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(attempt, respHeaders, retry)
			case http.StatusNoContent:
				// the respondent has not submitted the form yet
				return nil
			case http.StatusOK:
				return s.processSubmission(ctx, attempt, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("attemptID", attempt.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processSubmission(ctx context.Context, attempt domain.Participation, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Participation != attempt.ID {
		return fmt.Errorf("attempt mismatch: expected %d, got %d", attempt.ID, response.Participation)
	}

	switch response.Status {
	case "SUBMITTED":
		if response.ResponseID == "" {
			return fmt.Errorf("submitted response for attempt %d has no response id", attempt.ID)
		}
		if err := s.repo.RecordExternal(ctx, attempt.ID, response.ResponseID, response.SubmittedAt); err != nil {
			return fmt.Errorf("failed to record submission for attempt %d: %w", attempt.ID, err)
		}
		zap.L().Info("Form submission recorded", zap.Int("attemptID", attempt.ID), zap.String("responseID", response.ResponseID))
	case "PENDING":
		zap.L().Info("Form not submitted yet", zap.Int("attemptID", attempt.ID))
	default:
		zap.L().Warn("Unrecognized status received", zap.Int("attemptID", attempt.ID), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(attempt domain.Participation, respHeaders http.Header, retry int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(retry)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("attemptID", attempt.ID),
		zap.Int("retry", retry),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
