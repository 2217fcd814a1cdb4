// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"creator-match-workers/internal/common/camunda"
	"creator-match-workers/internal/common/config"
	"creator-match-workers/internal/common/database"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/observability"
	"creator-match-workers/internal/common/scraper"
	"creator-match-workers/internal/scoring"

	rc "creator-match-workers/internal/workers/matching/rank-creators"
	sbc "creator-match-workers/internal/workers/matching/score-brand-compatibility"
	fcp "creator-match-workers/internal/workers/profile/fetch-creator-profiles"
	vci "creator-match-workers/internal/workers/profile/validate-creator-input"
	brr "creator-match-workers/internal/workers/reporting/build-ranking-report"
	prr "creator-match-workers/internal/workers/reporting/push-ranking-report"
	sn "creator-match-workers/internal/workers/reporting/send-notification"
)

// openWorkers tracks every started job worker so shutdown can drain them.
var openWorkers []*camunda.CamundaWorker

// retryWithBackoff retries an operation with exponential backoff. External
// dependencies (broker, databases) routinely come up after the workers in
// docker-compose, so startup tolerates a long warmup window.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}

		log.Warn("operation failed, retrying",
			zap.String("operation", operationName),
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", maxRetries),
			zap.Duration("nextDelay", delay),
			zap.Error(err),
		)

		if attempt < maxRetries {
			time.Sleep(delay)
			delay *= 2
			if delay > 30*time.Second {
				delay = 30 * time.Second
			}
		}
	}

	return err
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	tracing := observability.NewTracing("worker-manager", os.Getenv("JAEGER_COLLECTOR_ENDPOINT"))
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init External Service Clients ---
	scraperClient := scraper.NewClient(
		cfg.Scraper.BaseURL,
		cfg.Scraper.TokenURL,
		cfg.Scraper.ClientID,
		cfg.Scraper.ClientSecret,
		time.Duration(cfg.Scraper.Timeout)*time.Millisecond,
	)

	zapLog.Info("All external service clients initialized")

	// --- START: Register Workers ---

	// --- 1. Profile Workers (2) ---
	if cfg.Workers[fcp.TaskType].Enabled {
		handler := fcp.NewHandler(
			&fcp.Config{
				CacheTTL:     time.Duration(cfg.Scraper.CacheTTL) * time.Second,
				Timeout:      time.Duration(cfg.Workers[fcp.TaskType].Timeout) * time.Millisecond,
				MaxBatchSize: cfg.Scraper.MaxBatchSize,
			},
			scraperClient, redis.Client, pg.DB, log,
		)
		startWorker(zeebeClient, fcp.TaskType, cfg.Workers[fcp.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[vci.TaskType].Enabled {
		handler := vci.NewHandler(
			&vci.Config{
				Timeout:      time.Duration(cfg.Workers[vci.TaskType].Timeout) * time.Millisecond,
				MaxFollowers: int64(cfg.Scoring.MaxFollowers),
				MaxBioLength: cfg.Scoring.MaxBioLength,
			},
			log,
		)
		startWorker(zeebeClient, vci.TaskType, cfg.Workers[vci.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Matching Workers (2) ---
	scoringLimits := scoring.Limits{
		MaxFollowers: int64(cfg.Scoring.MaxFollowers),
		MaxBioLength: cfg.Scoring.MaxBioLength,
	}

	if cfg.Workers[sbc.TaskType].Enabled {
		handler := sbc.NewHandler(
			&sbc.Config{
				Timeout: time.Duration(cfg.Workers[sbc.TaskType].Timeout) * time.Millisecond,
				Limits:  scoringLimits,
			},
			log,
		)
		startWorker(zeebeClient, sbc.TaskType, cfg.Workers[sbc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rc.TaskType].Enabled {
		handler := rc.NewHandler(
			&rc.Config{
				Timeout: time.Duration(cfg.Workers[rc.TaskType].Timeout) * time.Millisecond,
				Limits:  scoringLimits,
			},
			log,
		)
		startWorker(zeebeClient, rc.TaskType, cfg.Workers[rc.TaskType], handler.Handle, zapLog)
	}

	// --- 3. Reporting Workers (3) ---
	if cfg.Workers[brr.TaskType].Enabled {
		handler, err := brr.NewHandler(
			&brr.Config{
				Timeout:      time.Duration(cfg.Workers[brr.TaskType].Timeout) * time.Millisecond,
				RegistryPath: cfg.Reporting.RegistryPath,
				TopListSize:  cfg.Reporting.TopListSize,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create build-ranking-report handler", zap.Error(err))
		}
		startWorker(zeebeClient, brr.TaskType, cfg.Workers[brr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[prr.TaskType].Enabled {
		handler := prr.NewHandler(
			&prr.Config{
				Timeout:   time.Duration(cfg.Workers[prr.TaskType].Timeout) * time.Millisecond,
				IndexName: cfg.Reporting.IndexName,
			},
			esClient.Client, log,
		)
		startWorker(zeebeClient, prr.TaskType, cfg.Workers[prr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sn.TaskType].Enabled {
		handler, err := sn.NewHandler(
			&sn.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SMSEnabled:   cfg.Notifications.SMS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				AWSRegion:    cfg.Notifications.AWS.Region,
				Timeout:      time.Duration(cfg.Workers[sn.TaskType].Timeout) * time.Millisecond,
			},
			pg.DB, log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-notification handler", zap.Error(err))
		}
		startWorker(zeebeClient, sn.TaskType, cfg.Workers[sn.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 7 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range openWorkers {
		w.Stop()
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	w := camunda.NewWorker(client, taskType, wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond, handlerFunc, log)
	openWorkers = append(openWorkers, w)

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
