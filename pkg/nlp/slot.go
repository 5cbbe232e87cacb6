package nlp

import (
	"regexp"
	"strings"
)

// mentionPattern finds money mentions worth slotting: unit-suffixed amounts
// and bare 5+ digit literals.
var mentionPattern = regexp.MustCompile(`(?i)\d+[.,]?\d*\s*(jt|juta|rb|ribu|k)\b|\b\d{5,}\b`)

// ExtractMoneyMentions scans the whole message and returns every parsed
// money mention with its byte offset, in order of appearance.
func ExtractMoneyMentions(message string) []MoneyMention {
	var mentions []MoneyMention

	for _, loc := range mentionPattern.FindAllStringIndex(message, -1) {
		raw := message[loc[0]:loc[1]]
		value, ok := ParseAmount(raw)
		if !ok {
			continue
		}
		mentions = append(mentions, MoneyMention{
			RawText:  raw,
			Position: loc[0],
			Value:    value,
		})
	}

	return mentions
}

type slotRole int

const (
	roleNone slotRole = iota
	roleTarget
	roleMonthly
	roleWeekly
)

// ExtractSlots assigns each money mention in the message to a semantic role
// (purchase target, monthly allowance, weekly allowance).
//
// A mention's role is decided by the nearest keyword that precedes it within
// an 80-character window, provided the keyword ends within 50 characters of
// the mention. Monthly and weekly keywords beat target keywords on distance
// ties. Mentions with no usable context are assigned afterwards, left to
// right, into whichever slot is still empty in target, monthly, weekly
// order - users often state target-then-allowance (or the reverse) without
// naming either.
func ExtractSlots(message string) SlotResult {
	message = strings.ToLower(message)

	var result SlotResult
	var deferred []MoneyMention

	for _, mention := range ExtractMoneyMentions(message) {
		role := resolveMentionRole(message, mention.Position)
		if role == roleNone || !assignSlot(&result, role, mention.Value) {
			deferred = append(deferred, mention)
		}
	}

	for _, mention := range deferred {
		switch {
		case result.Target == 0:
			result.Target = mention.Value
		case result.Monthly == 0:
			result.Monthly = mention.Value
		case result.Weekly == 0:
			result.Weekly = mention.Value
		}
	}

	return result
}

// resolveMentionRole finds the last role keyword inside the backward window
// ending at the mention. Roles are checked monthly, weekly, target so that
// an allowance keyword wins when two keywords end at the same offset.
func resolveMentionRole(message string, mentionPos int) slotRole {
	windowStart := mentionPos - contextWindowSize
	if windowStart < 0 {
		windowStart = 0
	}
	window := message[windowStart:mentionPos]

	bestEnd := -1
	best := roleNone

	check := func(keywords []string, role slotRole) {
		for _, keyword := range keywords {
			idx := strings.LastIndex(window, keyword)
			if idx < 0 {
				continue
			}
			end := windowStart + idx + len(keyword)
			if mentionPos-end > contextMaxGap {
				continue
			}
			if end > bestEnd {
				bestEnd = end
				best = role
			}
		}
	}

	check(monthlyKeywords, roleMonthly)
	check(weeklyKeywords, roleWeekly)
	check(targetSlotKeywords(), roleTarget)

	return best
}

// Target context includes both explicit target words and the item nouns.
func targetSlotKeywords() []string {
	return append(append([]string{}, targetContextKeywords...), itemKeywords...)
}

func assignSlot(result *SlotResult, role slotRole, value int64) bool {
	switch role {
	case roleTarget:
		if result.Target == 0 {
			result.Target = value
			return true
		}
	case roleMonthly:
		if result.Monthly == 0 {
			result.Monthly = value
			return true
		}
	case roleWeekly:
		if result.Weekly == 0 {
			result.Weekly = value
			return true
		}
	}
	return false
}
