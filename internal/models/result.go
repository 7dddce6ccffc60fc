package models

// Status grades the evidence behind an analysis result.
type Status string

const (
	StatusVerified     Status = "verified"
	StatusPartial      Status = "partial"
	StatusInsufficient Status = "insufficient"
)

// TraceStep records one executed filter or aggregation, with the row count
// after the step and the literal expression that produced it.
type TraceStep struct {
	Description string
	Rows        int
	Expression  string
}

// EvidenceTrace is the ordered, append-only execution log for one request.
// Steps are never rewritten after the fact; relaxations append, they do not
// replace.
type EvidenceTrace struct {
	Steps []TraceStep
}

// Add appends a step to the trace.
func (t *EvidenceTrace) Add(description string, rows int, expression string) {
	t.Steps = append(t.Steps, TraceStep{Description: description, Rows: rows, Expression: expression})
}

// KeyMetric is the single headline number of a result.
type KeyMetric struct {
	Label string
	Value float64
	Unit  string
}

// Table is the ordered tabular output of an analysis. Cells are formatted for
// presentation; the trace carries the raw counts.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// VizSpec tells the presentation layer which visualization fits the result.
type VizSpec struct {
	Kind   string
	Title  string
	XField string
	YField string
}

// Visualization kinds.
const (
	VizRankedList = "ranked_list"
	VizBar        = "bar"
	VizDelta      = "delta"
	VizGridMap    = "grid_map"
)

// RelaxationKind names one step of the fallback cascade.
type RelaxationKind string

const (
	RelaxDropWeather      RelaxationKind = "drop_weather_filter"
	RelaxWidenWindow      RelaxationKind = "widen_window"
	RelaxGlobalDiagnostic RelaxationKind = "global_diagnostic"
)

// FallbackStep records one applied relaxation, in application order.
type FallbackStep struct {
	Kind    RelaxationKind
	Reason  string
	Rows    int
	Window  TimeWindow
	Weather WeatherFilter
}

// AnalysisResult is the audited output of the executor for one request. Every
// number it carries is backed by a trace step. BaseCount is the filtered row
// count captured before any per-group narrowing; rate metrics divide by it and
// nothing else.
type AnalysisResult struct {
	Kind        AnalysisKind
	Status      Status
	Key         KeyMetric
	Table       Table
	Viz         VizSpec
	Trace       EvidenceTrace
	Caveats     []string
	Relaxations []FallbackStep
	Window      TimeWindow
	Weather     WeatherFilter
	BaseCount   int
}
