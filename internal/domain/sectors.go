package domain

import "github.com/kamalneel/agrawal-estate-sub000/internal/utils"

// SectorProfile holds the categorical flags derived from a fund's name and
// category text. Classification is defensive: unmatched or empty text falls
// through to the "general" label rather than failing.
type SectorProfile struct {
	IsTech           bool `json:"is_tech"`
	IsHealthcare     bool `json:"is_healthcare"`
	IsInternational  bool `json:"is_international"`
	IsUSEquity       bool `json:"is_us_equity"`
	IsConsumption    bool `json:"is_consumption"`
	IsBanking        bool `json:"is_banking"`
	IsInfrastructure bool `json:"is_infrastructure"`
	IsDirect         bool `json:"is_direct"`

	Label string `json:"label"`
}

// Keyword lists for case-insensitive substring matching over name+category.
var (
	techKeywords          = []string{"tech", "digital", "innovation"}
	healthcareKeywords    = []string{"health", "pharma", "medic"}
	internationalKeywords = []string{"international", "global", "overseas", "world"}
	usEquityKeywords      = []string{"nasdaq", "s&p", "us equity", "u.s."}
	consumptionKeywords   = []string{"consum", "fmcg"}
	bankingKeywords       = []string{"bank", "financial"}
	infraKeywords         = []string{"infra"}
	directKeywords        = []string{"direct"}
)

// Sectors classifies the fund from its name and category text.
func (f *FundRecord) Sectors() SectorProfile {
	text := utils.NormalizeText(f.Name)
	if f.Category != nil {
		text += " " + utils.NormalizeText(*f.Category)
	}

	p := SectorProfile{
		IsTech:           utils.ContainsAny(text, techKeywords),
		IsHealthcare:     utils.ContainsAny(text, healthcareKeywords),
		IsInternational:  utils.ContainsAny(text, internationalKeywords),
		IsUSEquity:       utils.ContainsAny(text, usEquityKeywords),
		IsConsumption:    utils.ContainsAny(text, consumptionKeywords),
		IsBanking:        utils.ContainsAny(text, bankingKeywords),
		IsInfrastructure: utils.ContainsAny(text, infraKeywords),
		IsDirect:         utils.ContainsAny(text, directKeywords),
	}
	p.Label = p.label()
	return p
}

// label picks a display label in the same priority order the strategic-fit
// scorer uses, so the breakdown and the bonus always agree.
func (p SectorProfile) label() string {
	switch {
	case p.IsTech:
		return "technology"
	case p.IsHealthcare:
		return "healthcare"
	case p.IsInternational, p.IsUSEquity:
		return "international"
	case p.IsConsumption:
		return "consumption"
	case p.IsInfrastructure:
		return "infrastructure"
	case p.IsBanking:
		return "banking"
	default:
		return "general"
	}
}
