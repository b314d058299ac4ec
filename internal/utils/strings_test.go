package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "parag parikh flexi cap", NormalizeText("  Parag Parikh Flexi Cap "))
	assert.Equal(t, "", NormalizeText("   "))
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		keywords []string
		expected bool
	}{
		{"match first keyword", "icici prudential technology fund", []string{"tech", "digital"}, true},
		{"match later keyword", "axis digital india", []string{"tech", "digital"}, true},
		{"no match", "hdfc balanced advantage", []string{"tech", "digital"}, false},
		{"empty keyword ignored", "anything", []string{""}, false},
		{"empty haystack", "", []string{"tech"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsAny(tt.haystack, tt.keywords))
		})
	}
}

func TestParseCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseCSV(" a , b ,"))
	assert.Nil(t, ParseCSV(""))
	assert.Nil(t, ParseCSV(" , ,"))
}
