package main

import "testing"

func TestEnumValueSuffix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"OFF", "Off"},
		{"ON", "On"},
		{"DAYTIME_RUNNING_LIGHTS", "DaytimeRunningLights"},
		{"SAE_2_DISENGAGING", "SAE2Disengaging"},
		{"SAE_5", "SAE5"},
		{"HR_12", "HR12"},
		{"YYYY_MM_DD", "YyyyMmDd"},
		{"GALLON_UK", "GallonUK"},
		{"SIRIUS_XM", "SiriusXM"},
		{"USB", "USB"},
		{"C", "C"},
		{"KPA", "KPA"},
		{"LITERS_PER_100_KILOMETERS", "LitersPer100Kilometers"},
		{"ACC", "ACC"},
		{"one-shot open", "OneShotOpen"},
		{"100_PERCENT", "V100Percent"},
		{"", "V"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := enumValueSuffix(tt.input)
			if got != tt.want {
				t.Errorf("enumValueSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecv(t *testing.T) {
	if got := recv("BodyLights"); got != "b" {
		t.Errorf("recv(BodyLights) = %q, want b", got)
	}
}
