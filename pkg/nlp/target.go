package nlp

import (
	"regexp"
	"strings"

	"SakuBot/internal/entity"
)

// Strategy 1: item noun, up to five modifier words, then an amount.
// Handles "laptop 7jt" as well as "macbook m3 pro 20jt".
var itemAmountPattern = regexp.MustCompile(
	`(?i)\b(` + strings.Join(itemKeywords, "|") + `)((?:\s+[\w-]+){0,5}?)\s*(\d+[.,]?\d*)\s*(jt|juta|rb|ribu|k)\b`)

var amountOnlyPattern = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(jt|juta|rb|ribu|k)\b`)

// ExtractTargets finds every named purchase target in the message. Three
// strategies of decreasing specificity run until one yields results, then
// near-identical names are merged.
func ExtractTargets(message string) []entity.Target {
	message = strings.ToLower(message)

	targets := extractByPattern(message)
	if len(targets) == 0 {
		targets = extractByLooseGap(message)
	}
	if len(targets) == 0 {
		targets = extractFromSlots(message)
	}

	return dedupeTargets(targets)
}

func extractByPattern(message string) []entity.Target {
	var targets []entity.Target
	var acceptedStarts []int

	for _, loc := range itemAmountPattern.FindAllStringSubmatchIndex(message, -1) {
		start := loc[0]
		if isDuplicatePosition(start, acceptedStarts) {
			continue
		}

		item := message[loc[2]:loc[3]]
		modifier := cleanModifier(message[loc[4]:loc[5]])
		amount, ok := ParseAmount(message[loc[6]:loc[9]])
		if !ok || amount <= 0 {
			continue
		}

		name := item
		if modifier != "" {
			name = item + " " + modifier
		}

		targets = append(targets, entity.Target{Name: name, Amount: amount})
		acceptedStarts = append(acceptedStarts, start)
	}

	return targets
}

// Overlapping scans can capture the same phrase twice; matches starting
// within a few characters of an accepted one are the same capture.
func isDuplicatePosition(start int, accepted []int) bool {
	for _, pos := range accepted {
		if start-pos <= duplicateMatchRadius && pos-start <= duplicateMatchRadius {
			return true
		}
	}
	return false
}

func cleanModifier(modifier string) string {
	var kept []string
	for _, word := range strings.Fields(modifier) {
		if modifierStripWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// Strategy 2: per-keyword scan with a looser gap between noun and amount.
func extractByLooseGap(message string) []entity.Target {
	var targets []entity.Target

	for _, item := range itemKeywords {
		idx := strings.Index(message, item)
		if idx < 0 {
			continue
		}

		gapEnd := idx + len(item) + looseGapLimit
		if gapEnd > len(message) {
			gapEnd = len(message)
		}

		loc := amountOnlyPattern.FindStringIndex(message[idx+len(item):])
		if loc == nil || idx+len(item)+loc[0] > gapEnd {
			continue
		}

		amount, ok := ParseAmount(message[idx+len(item)+loc[0]:])
		if !ok || amount <= 0 {
			continue
		}

		targets = append(targets, entity.Target{Name: item, Amount: amount})
	}

	return targets
}

// Strategy 3: fall back to the slot extractor's target amount, paired with
// whatever item noun appears anywhere in the message.
func extractFromSlots(message string) []entity.Target {
	slots := ExtractSlots(message)
	if slots.Target <= 0 {
		return nil
	}

	name := "target"
	for _, item := range itemKeywords {
		if strings.Contains(message, item) {
			name = item
			break
		}
	}

	return []entity.Target{{Name: name, Amount: slots.Target}}
}

// dedupeTargets normalizes names and merges candidates whose names contain
// each other, keeping the longer (more specific) name. A survivor without
// an amount inherits the amount of the name it absorbed.
func dedupeTargets(targets []entity.Target) []entity.Target {
	var result []entity.Target

	for _, candidate := range targets {
		candidate.Name = strings.Join(strings.Fields(strings.ToLower(candidate.Name)), " ")
		if candidate.Name == "" {
			continue
		}

		absorbed := false
		for i := range result {
			if !namesContain(result[i].Name, candidate.Name) {
				continue
			}

			if len(candidate.Name) > len(result[i].Name) {
				if candidate.Amount <= 0 {
					candidate.Amount = result[i].Amount
				}
				result[i] = candidate
			} else if result[i].Amount <= 0 {
				result[i].Amount = candidate.Amount
			}
			absorbed = true
			break
		}

		if !absorbed {
			result = append(result, candidate)
		}
	}

	return result
}

func namesContain(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
