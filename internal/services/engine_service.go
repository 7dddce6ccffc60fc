package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mobilitystack/mobility-engine/internal/api"
	"github.com/mobilitystack/mobility-engine/internal/cache"
	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/engine"
	enginev1 "github.com/mobilitystack/mobility-engine/internal/grpc/generated"
	"github.com/mobilitystack/mobility-engine/internal/metrics"
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// EngineService implements the gRPC MobilityEngine service.
type EngineService struct {
	enginev1.UnimplementedMobilityEngineServer

	logger    *slog.Logger
	pipeline  *engine.Pipeline
	snapshot  *dataset.Snapshot
	answers   cache.Provider
	answerTTL time.Duration
	latencies *utils.LatencyTracker
}

// NewEngineService constructs the engine service facade. A nil answer cache
// falls back to the noop provider.
func NewEngineService(logger *slog.Logger, pipeline *engine.Pipeline, snapshot *dataset.Snapshot, answers cache.Provider, answerTTL time.Duration) *EngineService {
	if logger == nil {
		logger = slog.Default()
	}
	if answers == nil {
		answers = cache.NoopProvider{}
	}
	return &EngineService{
		logger:    logger,
		pipeline:  pipeline,
		snapshot:  snapshot,
		answers:   answers,
		answerTTL: answerTTL,
		latencies: utils.NewLatencyTracker(1024),
	}
}

// AnswerQuestion runs one question through the full pipeline.
func (s *EngineService) AnswerQuestion(ctx context.Context, req *enginev1.QuestionRequest) (*enginev1.AnswerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.pipeline == nil {
		return nil, status.Error(codes.FailedPrecondition, "pipeline not configured")
	}

	question, opts, err := api.FromProtoQuestionRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Debug("AnswerQuestion called", slog.String("question", question), slog.String("audience", string(opts.Audience)))

	key := cache.AnswerKey(question, req.GetWindowLabel(), req.GetWindowStart(), req.GetWindowEnd(), string(opts.Audience), opts.SkipClarification)
	if payload, err := s.answers.Get(ctx, key); err == nil {
		cached := &enginev1.AnswerResponse{}
		if err := proto.Unmarshal(payload, cached); err == nil {
			metrics.ObserveQuestion(0, cached.GetOutcome())
			return cached, nil
		}
		s.logger.Warn("discarding undecodable cached answer", slog.String("key", key))
	}

	start := time.Now()
	resp, err := s.pipeline.Answer(ctx, question, opts)
	duration := time.Since(start)
	if err != nil {
		metrics.ObserveQuestion(duration, "error")
		s.logger.Error("pipeline answer failed", slog.Any("error", err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.latencies.Observe(duration)
	metrics.ObserveQuestion(duration, resp.Outcome())
	for _, step := range resp.Result.Relaxations {
		metrics.ObserveFallbackStep(string(step.Kind))
	}
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		p95 := s.latencies.Percentile(95)
		s.logger.Info("answer latency", slog.Duration("p95", p95), slog.Int("samples", count))
	}

	protoResp := api.ToProtoAnswerResponse(resp)
	if payload, err := proto.Marshal(protoResp); err == nil {
		if err := s.answers.Set(ctx, key, payload, s.answerTTL); err != nil {
			s.logger.Warn("answer cache store failed", slog.Any("error", err))
		}
	}
	return protoResp, nil
}

// ListAnalysisKinds exposes the closed routing set with descriptions.
func (s *EngineService) ListAnalysisKinds(ctx context.Context, req *enginev1.ListAnalysisKindsRequest) (*enginev1.ListAnalysisKindsResponse, error) {
	resp := &enginev1.ListAnalysisKindsResponse{}
	for _, kind := range models.AnalysisKinds() {
		resp.Kinds = append(resp.Kinds, &enginev1.AnalysisKindInfo{
			Kind:        string(kind),
			Description: engine.Describe(kind),
		})
	}
	return resp, nil
}

// HealthCheck reports liveness and the load status of each dataset source.
func (s *EngineService) HealthCheck(ctx context.Context, req *enginev1.HealthCheckRequest) (*enginev1.HealthCheckResponse, error) {
	resp := &enginev1.HealthCheckResponse{Status: "SERVING", Sources: map[string]string{}}
	if s.snapshot == nil {
		resp.Status = "NOT_SERVING"
		return resp, nil
	}
	sources := []dataset.Source{
		dataset.SourceCollisions,
		dataset.SourceServiceRequests,
		dataset.SourceTransitStops,
		dataset.SourceWeather,
	}
	for _, src := range sources {
		resp.Sources[string(src)] = string(s.snapshot.SourceStatus(src))
	}
	return resp, nil
}

// LatencyP95 returns the current p95 answer latency.
func (s *EngineService) LatencyP95() time.Duration {
	if s.latencies == nil {
		return 0
	}
	return s.latencies.Percentile(95)
}
