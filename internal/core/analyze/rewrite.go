package analyze

// RewriteStrategy carries static improvement templates. Independent of the
// input text: the same checklist ships with every record
type RewriteStrategy struct {
	HookExamples       []string `json:"hook_examples"`
	CTAExamples        []string `json:"cta_examples"`
	StructureChecklist []string `json:"structure_checklist"`
}

var rewriteStrategy = RewriteStrategy{
	HookExamples: []string{
		"Have you ever wondered why [surprising outcome]?",
		"I spent [number] years doing [thing] wrong. Here's what changed.",
		"[Number]% of [audience] make this mistake.",
		"Most people think [common belief]. They're wrong.",
		"Last [time period] I [unexpected event].",
	},
	CTAExamples: []string{
		"What's your take? Comment below.",
		"Share this with someone who needs it.",
		"Follow for more posts like this.",
		"Agree or disagree? Let me know.",
		"Save this for the next time you [situation].",
	},
	StructureChecklist: []string{
		"Hook in the first two lines",
		"One idea per paragraph, blank line between paragraphs",
		"Lines under 80 characters where possible",
		"A list for anything with three or more items",
		"Call to action in the final lines",
		"3-5 specific hashtags grouped on the last line",
	},
}

// Rewrites returns the static rewrite templates
func Rewrites() RewriteStrategy { return rewriteStrategy }
