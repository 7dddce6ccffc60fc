package dataset

import "strings"

var conditionTokens = []struct {
	code   ConditionCode
	tokens []string
}{
	// Ice before rain: "pluie verglaçante" must classify as ice.
	{CondIce, []string{"verglas", "vergla", "glace", "gel", "ice", "freezing"}},
	{CondSnow, []string{"neige", "enneig", "tempete", "snow", "blizzard", "poudrerie"}},
	{CondRain, []string{"pluie", "pleu", "mouill", "averse", "bruine", "rain", "wet", "drizzle"}},
	{CondClear, []string{"clair", "sec", "degage", "soleil", "clear", "dry", "sunny"}},
}

// ClassifyCondition maps a free-text weather condition to the controlled
// vocabulary. Matching is accent-insensitive because loaders fold the input
// before calling.
func ClassifyCondition(raw string) ConditionCode {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return CondOther
	}
	for _, entry := range conditionTokens {
		for _, tok := range entry.tokens {
			if strings.Contains(s, tok) {
				return entry.code
			}
		}
	}
	return CondOther
}
