package nlp

import (
	"regexp"
	"strings"
)

type classifier struct{}

func NewClassifier() IClassifier {
	return &classifier{}
}

// DetectIntents classifies a message into one or more intents.
//
// goal_simulation and future_budget_planning are exclusive: when detected
// they are returned as the sole intent. Greeting-only and help-only short
// messages come next. Everything else may co-occur, ordered by the position
// of the first keyword hit. An unmatched message defaults to recommendation.
func (c *classifier) DetectIntents(message string) []Intent {
	normalized := normalizeMessage(message)

	if c.isGoalSimulation(normalized) {
		return []Intent{{Type: IntentGoalSimulation}}
	}

	if intent, ok := c.detectFutureBudget(normalized); ok {
		return []Intent{intent}
	}

	if c.isGreetingOnly(normalized) {
		return []Intent{{Type: IntentGreeting}}
	}

	if c.isHelpOnly(normalized) {
		return []Intent{{Type: IntentHelp}}
	}

	intents := c.detectReportIntents(normalized)
	if len(intents) == 0 {
		return []Intent{{Type: IntentRecommendation}}
	}

	return intents
}

func (c *classifier) DetectWithDetails(message string) *DetectionDetails {
	normalized := normalizeMessage(message)

	details := &DetectionDetails{
		Normalized:      normalized,
		Intents:         c.DetectIntents(message),
		MatchedKeywords: map[string][]string{},
		Mentions:        ExtractMoneyMentions(normalized),
		Slots:           ExtractSlots(normalized),
		Targets:         ExtractTargets(normalized),
	}

	collect := func(label string, keywords []string) {
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				details.MatchedKeywords[label] = append(details.MatchedKeywords[label], keyword)
			}
		}
	}

	collect("monthly", monthlyKeywords)
	collect("weekly", weeklyKeywords)
	collect("target", targetContextKeywords)
	collect("item", itemKeywords)
	collect("goal_strong", goalStrongKeywords)
	collect("goal_phrase", goalIntentPhrases)
	collect("saldo", saldoKeywords)
	collect("pengeluaran", pengeluaranKeywords)
	collect("pemasukan", pemasukanKeywords)
	collect("kategori", kategoriKeywords)

	return details
}

func normalizeMessage(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), " ")
}

func (c *classifier) isGoalSimulation(message string) bool {
	// A strong time keyword is decisive on its own.
	for _, keyword := range goalStrongKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}

	if len(ExtractMoneyMentions(message)) == 0 {
		return false
	}

	for _, pattern := range goalExplicitPatterns {
		if pattern.MatchString(message) {
			return true
		}
	}

	if timeQuestionPattern.MatchString(message) {
		for _, phrase := range goalIntentPhrases {
			if strings.Contains(message, phrase) {
				return true
			}
		}
	}

	return false
}

func (c *classifier) detectFutureBudget(message string) (Intent, bool) {
	if durationQuestionPattern.MatchString(message) {
		return Intent{}, false
	}

	matched := false
	for _, pattern := range futurePlanPatterns {
		if pattern.MatchString(message) {
			matched = true
			break
		}
	}
	if !matched {
		for _, keyword := range futureTimeKeywords {
			if strings.Contains(message, keyword) {
				matched = true
				break
			}
		}
	}
	if !matched {
		return Intent{}, false
	}

	intent := Intent{
		Type:        IntentFutureBudget,
		Category:    matchOfficialCategory(message),
		Period:      "minggu",
		PeriodCount: 1,
		UseBalance:  containsAny(message, useBalancePhrases),
	}

	if m := periodCountPattern.FindStringSubmatch(message); m != nil {
		intent.Period = m[2]
		intent.PeriodCount = atoiDefault(m[1], 1)
	} else if strings.Contains(message, "hari") {
		intent.Period = "hari"
	} else if strings.Contains(message, "bulan") {
		intent.Period = "bulan"
	}

	return intent, true
}

func (c *classifier) isGreetingOnly(message string) bool {
	if len(message) >= shortMessageLimit {
		return false
	}
	first, _, _ := strings.Cut(message, " ")
	for _, word := range greetingWords {
		if first == word {
			return true
		}
	}
	return false
}

func (c *classifier) isHelpOnly(message string) bool {
	return len(message) < shortMessageLimit && containsAny(message, helpKeywords)
}

func (c *classifier) detectReportIntents(message string) []Intent {
	var intents []Intent

	add := func(intent Intent, position int) {
		if position < 0 {
			return
		}
		intent.Position = position
		intents = append(intents, intent)
	}

	add(Intent{Type: IntentReportSaldo}, earliestKeyword(message, saldoKeywords))

	if pos := earliestKeyword(message, pengeluaranKeywords); pos >= 0 {
		intent := Intent{Type: IntentReportPengeluaran}
		if category := matchOfficialCategory(message); category != "" {
			intent.Category = category
		} else {
			intent.SearchKeyword = extractSearchKeyword(message)
		}
		add(intent, pos)
	}

	add(Intent{Type: IntentReportPemasukan}, earliestKeyword(message, pemasukanKeywords))
	add(Intent{Type: IntentReportKategori}, earliestKeyword(message, kategoriKeywords))
	add(Intent{Type: IntentRecommendation}, earliestPattern(message, recommendationPatterns))

	// Stable insertion sort keeps detection order for equal positions.
	for i := 1; i < len(intents); i++ {
		for j := i; j > 0 && intents[j].Position < intents[j-1].Position; j-- {
			intents[j], intents[j-1] = intents[j-1], intents[j]
		}
	}

	return intents
}

func earliestKeyword(message string, keywords []string) int {
	earliest := -1
	for _, keyword := range keywords {
		if idx := strings.Index(message, keyword); idx >= 0 {
			if earliest < 0 || idx < earliest {
				earliest = idx
			}
		}
	}
	return earliest
}

func earliestPattern(message string, patterns []*regexp.Regexp) int {
	earliest := -1
	for _, pattern := range patterns {
		if loc := pattern.FindStringIndex(message); loc != nil {
			if earliest < 0 || loc[0] < earliest {
				earliest = loc[0]
			}
		}
	}
	return earliest
}

func matchOfficialCategory(message string) string {
	for _, category := range officialCategories {
		for _, alias := range category.Aliases {
			if strings.Contains(message, alias) {
				return category.Name
			}
		}
	}
	return ""
}

// extractSearchKeyword returns the first non-noise token after a spending
// keyword, for queries like "pengeluaran bensin bulan ini".
func extractSearchKeyword(message string) string {
	tokens := strings.Fields(message)

	anchor := -1
	for i, token := range tokens {
		for _, keyword := range spendingKeywords {
			if strings.Contains(token, keyword) {
				anchor = i
				break
			}
		}
		if anchor >= 0 {
			break
		}
	}
	if anchor < 0 {
		return ""
	}

	for _, token := range tokens[anchor+1:] {
		token = strings.Trim(token, "?!.,")
		if token == "" || noiseWords[token] {
			continue
		}
		if _, ok := ParseAmount(token); ok {
			continue
		}
		return token
	}

	return ""
}

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func atoiDefault(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return fallback
	}
	return n
}
