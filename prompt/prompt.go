// Package prompt builds the text sent to vendor adapters: a
// level-appropriate reading passage prompt with a teacher persona per
// proficiency tier, plus a single-purpose word-translation prompt.
package prompt

import "fmt"

// Level is one of the five ordered English-proficiency tiers.
type Level string

const (
	Elementary        Level = "Elementary"
	PreIntermediate   Level = "Pre-Intermediate"
	Intermediate      Level = "Intermediate"
	UpperIntermediate Level = "Upper-Intermediate"
	Advanced          Level = "Advanced"
)

// Levels lists all tiers in ascending order.
var Levels = []Level{Elementary, PreIntermediate, Intermediate, UpperIntermediate, Advanced}

type wordRange struct {
	min, max int
}

var wordCounts = map[Level]wordRange{
	Elementary:        {150, 200},
	PreIntermediate:   {200, 250},
	Intermediate:      {250, 300},
	UpperIntermediate: {300, 400},
	Advanced:          {400, 500},
}

// Teacher persona system instructions, one per tier, escalating in
// described vocabulary and grammar complexity.
var personas = map[Level]string{
	Elementary: "You are a friendly English teacher writing for elementary students. " +
		"Use only very common everyday vocabulary, short simple sentences, and the present simple and past simple tenses.",
	PreIntermediate: "You are an encouraging English teacher writing for pre-intermediate students. " +
		"Use common vocabulary, some compound sentences, and basic past, present and future tenses.",
	Intermediate: "You are an experienced English teacher writing for intermediate students. " +
		"Use a wider range of vocabulary, occasional idiomatic expressions, and a mix of simple and complex sentence structures.",
	UpperIntermediate: "You are a demanding English teacher writing for upper-intermediate students. " +
		"Use varied vocabulary including less common words, complex sentences, conditionals and passive constructions.",
	Advanced: "You are a university-level English teacher writing for advanced students. " +
		"Use sophisticated vocabulary, nuanced idiomatic language, and complex grammatical structures throughout.",
}

// Token budgets for generation calls.
const (
	customPromptMaxTokens = 200
	advancedMaxTokens     = 700
	standardMaxTokens     = 500

	// TranslationMaxTokens caps word-translation calls.
	TranslationMaxTokens = 50
)

// WordCount returns the target word-count range for a level. An
// unrecognized level gets the Intermediate range.
func WordCount(level Level) (min, max int) {
	r, ok := wordCounts[level]
	if !ok {
		r = wordCounts[Intermediate]
	}
	return r.min, r.max
}

// Persona returns the teacher persona system instruction for a level.
// Intermediate is the fallback for any unrecognized value.
func Persona(level Level) string {
	if p, ok := personas[level]; ok {
		return p
	}
	return personas[Intermediate]
}

// Build produces the user prompt for a generation call. A non-empty
// customPrompt is returned verbatim: the caller has full control and no
// template is applied. Otherwise the passage template is filled with the
// level name and its word-count range.
func Build(level Level, customPrompt string) string {
	if customPrompt != "" {
		return customPrompt
	}
	min, max := WordCount(level)
	return fmt.Sprintf(
		"Write a reading comprehension passage in English for a student at the %s level. "+
			"The passage should be between %d and %d words long. "+
			"Make it engaging, self-contained and appropriate for the level.",
		level, min, max,
	)
}

// MaxTokens returns the output-token budget for a generation call.
// Custom-prompt calls are capped at 200; level-based calls get 700 for
// Advanced and 500 for every other tier.
func MaxTokens(level Level, custom bool) int {
	if custom {
		return customPromptMaxTokens
	}
	if level == Advanced {
		return advancedMaxTokens
	}
	return standardMaxTokens
}

// Translation builds the single-purpose word-translation prompt. The
// model is told to return only the translated word.
func Translation(word, targetLanguage string) string {
	return fmt.Sprintf(
		"Translate the English word %q to %s. Return only the translated word, nothing else.",
		word, targetLanguage,
	)
}
