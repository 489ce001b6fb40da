package triage

import (
	"strings"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// keywordRule maps a set of trigger substrings to a category. Rules are
// evaluated in table order; the first rule with any matching keyword wins.
type keywordRule struct {
	keywords []string
	category vo.Category
}

// The table order is part of the contract: "water leak near the light switch"
// classifies as PLUMBING because the plumbing rule comes first.
var classificationRules = []keywordRule{
	{keywords: []string{"plumbing", "water", "pipe", "leak"}, category: vo.CategoryPlumbing},
	{keywords: []string{"light", "power", "electricity"}, category: vo.CategoryElectrical},
	{keywords: []string{"lock", "key", "door"}, category: vo.CategoryLocksmith},
	{keywords: []string{"heat", "cold", "hvac"}, category: vo.CategoryHeating},
}

// Classifier assigns a trade category to a ticket description.
type Classifier interface {
	Classify(description string) vo.Category
}

// KeywordClassifier is the rule-based implementation: case-insensitive
// substring matching against a fixed keyword table. It is deterministic and
// has no dependencies, which keeps triage reproducible.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(description string) vo.Category {
	lowered := strings.ToLower(description)

	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category
			}
		}
	}

	return vo.CategoryGeneralMaintenance
}
