package textproc

import "strings"

// VerbCategory groups action verbs by the kind of achievement they open.
type VerbCategory string

const (
	VerbLeadership  VerbCategory = "leadership"
	VerbAchievement VerbCategory = "achievement"
	VerbCreation    VerbCategory = "creation"
	VerbImprovement VerbCategory = "improvement"
	VerbGrowth      VerbCategory = "growth"
	VerbNone        VerbCategory = ""
)

// actionVerbs maps each category to its verbs. Past-tense forms only: the
// present participle ("managing", "leading") signals ongoing-duty phrasing,
// not an achievement, and must not count as strong.
var actionVerbs = map[VerbCategory][]string{
	VerbLeadership: {
		"led", "directed", "managed", "spearheaded",
		"headed", "oversaw", "mentored", "coached", "chaired", "supervised",
	},
	VerbAchievement: {
		"achieved", "delivered", "exceeded", "surpassed", "won", "secured",
		"attained", "completed", "earned",
	},
	VerbCreation: {
		"built", "created", "designed", "developed", "launched", "implemented",
		"engineered", "established", "founded", "authored",
	},
	VerbImprovement: {
		"improved", "optimized", "streamlined", "reduced", "accelerated",
		"automated", "modernized", "simplified", "eliminated",
	},
	VerbGrowth: {
		"grew", "increased", "expanded", "scaled", "boosted", "doubled",
		"tripled", "generated", "drove",
	},
}

// verbCategoryOrder fixes evaluation order so the highest-weighted category wins
// when a bullet contains verbs from several.
var verbCategoryOrder = []VerbCategory{
	VerbLeadership, VerbAchievement, VerbCreation, VerbImprovement, VerbGrowth,
}

// LeadingVerbCategory returns the category of the first strong action verb
// found in the bullet, preferring leadership over achievement over the rest.
func LeadingVerbCategory(bullet string) VerbCategory {
	words := strings.Fields(strings.ToLower(bullet))
	if len(words) == 0 {
		return VerbNone
	}
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[strings.Trim(w, ".,;:!")] = true
	}
	for _, category := range verbCategoryOrder {
		for _, verb := range actionVerbs[category] {
			if wordSet[verb] {
				return category
			}
		}
	}
	return VerbNone
}

// HasStrongVerb reports whether the bullet contains any strong action verb.
func HasStrongVerb(bullet string) bool {
	return LeadingVerbCategory(bullet) != VerbNone
}

// StartsWithStrongVerb reports whether the bullet's first word is a strong verb.
func StartsWithStrongVerb(bullet string) bool {
	words := strings.Fields(strings.ToLower(bullet))
	if len(words) == 0 {
		return false
	}
	first := strings.Trim(words[0], ".,;:!")
	for _, verbs := range actionVerbs {
		for _, verb := range verbs {
			if first == verb {
				return true
			}
		}
	}
	return false
}
