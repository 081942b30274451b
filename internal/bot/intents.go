package bot

// Intent classifies a conversational query
type Intent string

// Known intents, in priority order
const (
	IntentPredict  Intent = "predict"
	IntentStats    Intent = "stats"
	IntentCompare  Intent = "compare"
	IntentTable    Intent = "table"
	IntentFallback Intent = "fallback"
)

// rule maps keyword presence to an intent. Rules are evaluated strictly in
// order; a rule whose keywords match but whose team requirement is not met
// falls through to the next rule, so priority and fallthrough stay
// enumerable and testable.
type rule struct {
	intent   Intent
	keywords []string
}

var rules = []rule{
	{IntentPredict, []string{"predict", "win", "winner"}},
	{IntentStats, []string{"stats", "performance"}},
	{IntentCompare, []string{"compare", "better"}},
	{IntentTable, []string{"table", "standings", "rank"}},
}
