// internal/workers/profile/fetch-creator-profiles/handler.go
package fetchcreatorprofiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
	"creator-match-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "fetch-creator-profiles"
)

// ProfileFetcher is the remote profile source, normally the scraper API.
type ProfileFetcher interface {
	FetchProfiles(ctx context.Context, usernames []string) ([]models.CreatorProfile, []string, error)
}

type Handler struct {
	config       *Config
	fetcher      ProfileFetcher
	redis        *redis.Client
	db           *sql.DB
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, fetcher ProfileFetcher, redisClient *redis.Client, db *sql.DB, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		fetcher:      fetcher,
		redis:        redisClient,
		db:           db,
		errorHandler: apperrors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job,
			apperrors.NewInputValidationFailedError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCodeOf(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	usernames := normalizeUsernames(input)
	if len(usernames) == 0 {
		return nil, apperrors.NewInputValidationFailedError("no usernames provided")
	}

	creators := make([]models.CreatorProfile, 0, len(usernames))
	var misses []string
	cacheHits := 0

	for _, username := range usernames {
		profile, ok := h.fromCache(ctx, username)
		if ok {
			creators = append(creators, *profile)
			cacheHits++
			continue
		}
		misses = append(misses, username)
	}

	var failed []string
	for _, chunk := range chunkUsernames(misses, h.config.MaxBatchSize) {
		fetched, missing, err := h.fetcher.FetchProfiles(ctx, chunk)
		if err != nil {
			// Scraper outage: the database fallback below gets the whole chunk.
			h.logger.Warn("scraper fetch failed, falling back to database", map[string]interface{}{
				"usernames": chunk,
				"error":     err,
			})
			missing = chunk
			fetched = nil
		}

		for i := range fetched {
			h.toCache(ctx, &fetched[i])
			creators = append(creators, fetched[i])
		}

		for _, username := range missing {
			profile, dbErr := h.fromDatabase(ctx, username)
			if dbErr != nil {
				failed = append(failed, username)
				continue
			}
			creators = append(creators, *profile)
		}
	}

	if len(creators) == 0 {
		return nil, apperrors.NewProfileFetchFailedError(
			strings.Join(failed, ","),
			fmt.Errorf("no profiles resolved from cache, scraper, or database"))
	}

	h.logger.Info("profiles fetched", map[string]interface{}{
		"requested": len(usernames),
		"resolved":  len(creators),
		"failed":    len(failed),
		"cacheHits": cacheHits,
	})

	return &Output{
		Creators:        creators,
		FailedUsernames: failed,
		CacheHits:       cacheHits,
	}, nil
}

func (h *Handler) fromCache(ctx context.Context, username string) (*models.CreatorProfile, bool) {
	if h.redis == nil {
		return nil, false
	}

	val, err := h.redis.Get(ctx, cacheKey(username)).Result()
	if err != nil {
		if err != redis.Nil {
			metrics.ProfileCacheHits.WithLabelValues("error").Inc()
			h.logger.Warn("cache read failed", map[string]interface{}{
				"username": username,
				"error":    err,
			})
		} else {
			metrics.ProfileCacheHits.WithLabelValues("miss").Inc()
		}
		return nil, false
	}

	var profile models.CreatorProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		metrics.ProfileCacheHits.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.ProfileCacheHits.WithLabelValues("hit").Inc()
	return &profile, true
}

func (h *Handler) toCache(ctx context.Context, profile *models.CreatorProfile) {
	if h.redis == nil || profile.Username == "" {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, cacheKey(profile.Username), data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("cache write failed", map[string]interface{}{
			"username": profile.Username,
			"error":    err,
		})
	}
}

func (h *Handler) fromDatabase(ctx context.Context, username string) (*models.CreatorProfile, error) {
	if h.db == nil {
		return nil, sql.ErrNoRows
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT username, nickname, bio, followers, engagement_rate, verified, bio_link, commerce_user
		FROM creator_profiles WHERE username = $1`, username)

	var profile models.CreatorProfile
	err := row.Scan(&profile.Username, &profile.Nickname, &profile.Bio,
		&profile.Followers, &profile.EngagementRate, &profile.Verified,
		&profile.BioLink, &profile.CommerceUser)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func cacheKey(username string) string {
	return "creator:profile:" + username
}

// normalizeUsernames merges the single and batch fields, trims whitespace,
// and drops duplicates while preserving order.
func normalizeUsernames(input *Input) []string {
	raw := input.Usernames
	if input.Username != "" {
		raw = append([]string{input.Username}, raw...)
	}

	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, username := range raw {
		username = strings.TrimSpace(username)
		if username == "" {
			continue
		}
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}
		out = append(out, username)
	}
	return out
}

func chunkUsernames(usernames []string, size int) [][]string {
	if size <= 0 {
		size = 50
	}
	var chunks [][]string
	for start := 0; start < len(usernames); start += size {
		end := start + size
		if end > len(usernames) {
			end = len(usernames)
		}
		chunks = append(chunks, usernames[start:end])
	}
	return chunks
}

func errorCodeOf(err error) string {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		return string(stdErr.Code)
	}
	return "INTERNAL_ERROR"
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
