// README: Fixed icon/label table for weather condition keys.
package extract

import "strings"

type conditionStyle struct {
	Icon  string
	Label string
}

// conditionStyles maps the condition vocabulary the prompt asks the model to
// use onto display glyphs. Keys are compared lower-cased.
var conditionStyles = map[string]conditionStyle{
	"sunny":         {"☀️", "Sunny"},
	"clear":         {"🌞", "Clear skies"},
	"partly cloudy": {"⛅", "Partly cloudy"},
	"cloudy":        {"☁️", "Cloudy"},
	"overcast":      {"🌥️", "Overcast"},
	"rainy":         {"🌧️", "Rainy"},
	"rain":          {"🌧️", "Rain showers"},
	"stormy":        {"⛈️", "Stormy"},
	"snow":          {"❄️", "Snowy"},
	"fog":           {"🌫️", "Foggy"},
	"windy":         {"💨", "Windy"},
}

// defaultConditionStyle is used for every key outside the table, including
// the empty string.
var defaultConditionStyle = conditionStyle{"🌤️", "Pleasant weather"}

func lookupCondition(key string) conditionStyle {
	if s, ok := conditionStyles[strings.ToLower(strings.TrimSpace(key))]; ok {
		return s
	}
	return defaultConditionStyle
}
