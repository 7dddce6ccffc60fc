package api

import (
	"fmt"

	"github.com/mobilitystack/mobility-engine/internal/engine"
	enginev1 "github.com/mobilitystack/mobility-engine/internal/grpc/generated"
	"github.com/mobilitystack/mobility-engine/internal/models"
	"github.com/mobilitystack/mobility-engine/internal/summarize"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

// FromProtoQuestionRequest maps the gRPC request into the question text and
// answer options.
func FromProtoQuestionRequest(req *enginev1.QuestionRequest) (string, engine.AnswerOptions, error) {
	if req == nil {
		return "", engine.AnswerOptions{}, fmt.Errorf("request is nil")
	}

	opts := engine.AnswerOptions{
		Audience:          summarize.AudiencePublic,
		SkipClarification: req.GetSkipClarification(),
	}
	if req.GetAudience() == string(summarize.AudienceMunicipal) {
		opts.Audience = summarize.AudienceMunicipal
	}

	label := models.WindowLabel(req.GetWindowLabel())
	switch label {
	case "":
		// No ambient window; the pipeline falls back to its default preset.
	case models.WindowLast7Days, models.WindowLast30Days, models.WindowLast3Months, models.WindowLast12Months:
		opts.Window = models.TimeWindow{Label: label}
	case models.WindowCustom:
		start, err := utils.ParseDate(req.GetWindowStart())
		if err != nil {
			return "", engine.AnswerOptions{}, fmt.Errorf("window_start: %w", err)
		}
		end, err := utils.ParseDate(req.GetWindowEnd())
		if err != nil {
			return "", engine.AnswerOptions{}, fmt.Errorf("window_end: %w", err)
		}
		opts.Window = models.TimeWindow{Start: start, End: end, Label: models.WindowCustom}
	default:
		return "", engine.AnswerOptions{}, fmt.Errorf("unknown window_label %q", req.GetWindowLabel())
	}

	return req.GetQuestion(), opts, nil
}

// ToProtoAnswerResponse converts a domain response into the gRPC representation.
func ToProtoAnswerResponse(resp models.Response) *enginev1.AnswerResponse {
	proto := &enginev1.AnswerResponse{
		Outcome:     resp.Outcome(),
		Status:      string(resp.Status),
		Badge:       resp.Badge,
		BadgeDetail: resp.BadgeDetail,
		Headline:    resp.Headline,
		Synthesis:   resp.Synthesis,
		NextCheck:   resp.NextCheck,
	}

	for _, ref := range resp.Refinements {
		proto.Refinements = append(proto.Refinements, &enginev1.Refinement{
			Label:    ref.Label,
			Question: ref.Question,
		})
	}

	if !resp.Answered() {
		return proto
	}

	res := resp.Result
	proto.Kind = string(res.Kind)
	proto.WindowLabel = string(res.Window.Label)
	if res.Window.Valid() {
		proto.WindowStart = utils.FormatDate(res.Window.Start)
		proto.WindowEnd = utils.FormatDate(res.Window.End)
	}
	proto.Weather = string(res.Weather)
	proto.BaseCount = int64(res.BaseCount)
	proto.VizKind = res.Viz.Kind
	proto.VizTitle = res.Viz.Title

	if res.Key.Label != "" {
		proto.KeyMetric = &enginev1.KeyMetric{
			Label: res.Key.Label,
			Value: res.Key.Value,
			Unit:  res.Key.Unit,
		}
	}

	proto.Columns = append([]string(nil), res.Table.Columns...)
	for _, row := range res.Table.Rows {
		proto.Rows = append(proto.Rows, &enginev1.TableRow{Cells: append([]string(nil), row...)})
	}

	for _, step := range res.Trace.Steps {
		proto.Trace = append(proto.Trace, &enginev1.TraceStep{
			Description: step.Description,
			Rows:        int64(step.Rows),
			Expression:  step.Expression,
		})
	}
	proto.Caveats = append([]string(nil), res.Caveats...)
	for _, step := range res.Relaxations {
		proto.Relaxations = append(proto.Relaxations, &enginev1.FallbackStep{
			Kind:   string(step.Kind),
			Reason: step.Reason,
			Rows:   int64(step.Rows),
		})
	}

	return proto
}
