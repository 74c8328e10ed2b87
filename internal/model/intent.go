package model

// Intent classifies what a question asks for.
type Intent string

const (
	IntentPipeline   Intent = "pipeline"
	IntentRevenue    Intent = "revenue"
	IntentCompare    Intent = "compare"
	IntentBreakdown  Intent = "breakdown"
	IntentConversion Intent = "conversion"
	IntentTopSector  Intent = "top_sector"
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentPipeline, IntentRevenue, IntentCompare, IntentBreakdown, IntentConversion, IntentTopSector:
		return true
	}
	return false
}

// NeedsSector reports whether the intent cannot be answered without a sector.
func (i Intent) NeedsSector() bool {
	return i == IntentPipeline || i == IntentRevenue
}

// TimeRange is the period a question refers to, as reported by the classifier.
type TimeRange string

const (
	TimeThisQuarter TimeRange = "this_quarter"
	TimeLastQuarter TimeRange = "last_quarter"
	TimeThisMonth   TimeRange = "this_month"
	TimeAllTime     TimeRange = "all_time"
)

// Valid reports whether r is one of the known time ranges.
func (r TimeRange) Valid() bool {
	switch r {
	case TimeThisQuarter, TimeLastQuarter, TimeThisMonth, TimeAllTime:
		return true
	}
	return false
}

// Interpretation is the structured reading of a question.
type Interpretation struct {
	Intent    Intent
	Sector    string    // empty when the question names no sector
	TimeRange TimeRange // empty when unspecified
}

// FallbackInterpretation is used whenever classification output is unusable.
func FallbackInterpretation() Interpretation {
	return Interpretation{Intent: IntentBreakdown, TimeRange: TimeThisQuarter}
}

// Role identifies the speaker of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the chat history.
type Turn struct {
	Role    Role
	Content string
}
