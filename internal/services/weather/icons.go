package weather

import "strings"

// DefaultIcon is shown when no rule matches the condition text.
const DefaultIcon = "⛅"

type iconRule struct {
	keywords []string
	icon     string
}

// iconRules are tested in order against the lower-cased condition and the
// first rule with a matching keyword wins. Thunder comes first so that
// "Thundery Showers" is never shown as plain rain.
var iconRules = []iconRule{
	{keywords: []string{"thundery", "thunder"}, icon: "⛈️"},
	{keywords: []string{"sunny", "clear"}, icon: "☀️"},
	{keywords: []string{"partly", "mostly"}, icon: "⛅"},
	{keywords: []string{"cloudy", "overcast"}, icon: "☁️"},
	{keywords: []string{"rain", "showers"}, icon: "🌧️"},
	{keywords: []string{"windy"}, icon: "💨"},
	{keywords: []string{"haze", "mist"}, icon: "🌫️"},
}

// IconFor maps free-text forecast conditions to a display icon.
func IconFor(condition string) string {
	lower := strings.ToLower(condition)
	for _, rule := range iconRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.icon
			}
		}
	}
	return DefaultIcon
}
