package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSectors_Classification(t *testing.T) {
	tests := []struct {
		name     string
		fund     FundRecord
		expected string
	}{
		{"technology from name", FundRecord{Name: "ICICI Prudential Technology Fund"}, "technology"},
		{"healthcare from category", FundRecord{Name: "SBI Fund", Category: strPtr("Pharma & Healthcare")}, "healthcare"},
		{"international", FundRecord{Name: "Motilal Oswal Nasdaq 100 FOF"}, "international"},
		{"consumption", FundRecord{Name: "Nippon India Consumption Fund"}, "consumption"},
		{"infrastructure", FundRecord{Name: "HDFC Infrastructure Fund"}, "infrastructure"},
		{"banking", FundRecord{Name: "Kotak Banking & Financial Services"}, "banking"},
		{"general fallthrough", FundRecord{Name: "HDFC Flexi Cap Fund"}, "general"},
		{"empty name", FundRecord{Name: ""}, "general"},
		{"tech wins over banking", FundRecord{Name: "Fintech Banking Digital Fund"}, "technology"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fund.Sectors().Label)
		})
	}
}

func TestSectors_DirectPlan(t *testing.T) {
	fund := FundRecord{Name: "Parag Parikh Flexi Cap Fund", Category: strPtr("Direct Growth")}
	assert.True(t, fund.Sectors().IsDirect, "Direct plan should be detected from category")

	regular := FundRecord{Name: "Parag Parikh Flexi Cap Fund"}
	assert.False(t, regular.Sectors().IsDirect)
}

func TestSectors_CaseInsensitive(t *testing.T) {
	fund := FundRecord{Name: "TATA DIGITAL INDIA FUND"}
	profile := fund.Sectors()
	assert.True(t, profile.IsTech, "Keyword matching should be case-insensitive")
	assert.Equal(t, "technology", profile.Label)
}
