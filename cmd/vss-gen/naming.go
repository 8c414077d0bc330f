package main

import (
	"strings"
	"unicode"
)

// initialisms are kept upper-case when converting allowed values to Go names.
var initialisms = map[string]bool{
	"AC": true, "ACC": true, "AM": true, "AUX": true, "CD": true, "DAB": true,
	"DVD": true, "EV": true, "FM": true, "GPS": true, "HMI": true, "HR": true,
	"HVAC": true, "ID": true, "KPA": true, "LED": true, "MPG": true, "PSI": true,
	"SAE": true, "TV": true, "UK": true, "URI": true, "US": true, "USB": true,
	"XM": true,
}

// enumValueSuffix converts an allowed value to the suffix of its Go constant:
// "DAYTIME_RUNNING_LIGHTS" to "DaytimeRunningLights", "SAE_2_DISENGAGING" to
// "SAE2Disengaging", "GALLON_UK" to "GallonUK".
func enumValueSuffix(value string) string {
	var b strings.Builder
	for _, word := range splitWords(value) {
		upper := strings.ToUpper(word)
		switch {
		case initialisms[upper] || len(word) == 1:
			b.WriteString(upper)
		default:
			b.WriteString(strings.ToUpper(word[:1]))
			b.WriteString(strings.ToLower(word[1:]))
		}
	}
	out := b.String()
	if out == "" || unicode.IsDigit(rune(out[0])) {
		out = "V" + out
	}
	return out
}

// splitWords splits on every character that cannot appear in a Go identifier.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	})
}

func recv(name string) string {
	return strings.ToLower(name[:1])
}
