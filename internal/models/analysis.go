package models

// TermHit is one occurrence of a compliance term with surrounding context
type TermHit struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

// SubmittalEntry is one row of the draft submittal log
type SubmittalEntry struct {
	Section   string `json:"Section"`
	Item      string `json:"Item"`
	Type      string `json:"Type"`
	DueBy     string `json:"Due By"`
	Notes     string `json:"Notes"`
	SourceRef string `json:"Source Ref"`
}

// AnalysisResult bundles every view derived from one document
type AnalysisResult struct {
	Document  DocumentInfo     `json:"document"`
	Backend   Backend          `json:"backend"`
	Summary   string           `json:"summary"`
	TermHits  []TermHit        `json:"termHits"`
	Submittal []SubmittalEntry `json:"submittalLog"`
	BidNotes  string           `json:"bidNotes"`
}
