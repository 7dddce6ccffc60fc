package models

// Response is the complete structured answer handed to the presentation
// layer. Every pipeline outcome, including refusals and clarification
// requests, is expressed as a Response rather than a bare error.
type Response struct {
	Status      Status
	Badge       string
	BadgeDetail string
	Headline    string

	// Synthesis is the optional reformulated narrative from the external
	// layer. Empty when the layer is absent or failed; the composer never
	// substitutes generated text for computed numbers.
	Synthesis string

	Result AnalysisResult

	// Refinements is populated only when Ambiguous is set.
	Refinements []Refinement

	NextCheck string

	Smalltalk  bool
	OutOfScope bool
	Ambiguous  bool
}

// Answered reports whether the response carries an analytical result.
func (r Response) Answered() bool {
	return !r.Smalltalk && !r.OutOfScope && !r.Ambiguous
}

// Outcome returns the label used for operational accounting.
func (r Response) Outcome() string {
	switch {
	case r.Smalltalk:
		return "smalltalk"
	case r.OutOfScope:
		return "out_of_scope"
	case r.Ambiguous:
		return "ambiguous"
	default:
		return string(r.Status)
	}
}
