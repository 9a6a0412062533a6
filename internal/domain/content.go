package domain

import "strings"

// Languages supported by the content hub. Payloads are keyed by these
// codes; a missing key means no content for that language.
var Languages = []string{"de", "en", "zh", "fr", "es", "pt", "ja", "ko"}

// DefaultLanguage is used when a request names an unsupported language.
const DefaultLanguage = "de"

// IsSupportedLanguage reports whether lang is one of the hub languages.
func IsSupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// NormalizeLanguage returns lang if supported, the default language
// otherwise.
func NormalizeLanguage(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	return DefaultLanguage
}

// TechItem is a technology news entry.
type TechItem struct {
	ID        int      `json:"id"`
	Category  string   `json:"category"`
	Content   string   `json:"content"`
	Source    string   `json:"source,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	Impact    string   `json:"impact,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Video     bool     `json:"isVideo,omitempty"`
	VideoID   string   `json:"videoId,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// IsVideo reports whether the item is a video entry, either flagged as one
// or linking to a video host.
func (t TechItem) IsVideo() bool {
	return t.Video || t.VideoID != "" ||
		strings.Contains(t.SourceURL, "youtube.com") || strings.Contains(t.SourceURL, "youtu.be")
}

// VideoURL returns the watch URL for a video entry, preferring the explicit
// source URL over one derived from the video ID.
func (t TechItem) VideoURL() string {
	if t.SourceURL != "" {
		return t.SourceURL
	}
	if t.VideoID != "" {
		return "https://www.youtube.com/watch?v=" + t.VideoID
	}
	return ""
}

// MatchFields returns the fields term matching runs against.
func (t TechItem) MatchFields() []string {
	fields := []string{t.Content, t.Category, t.Source}
	return append(fields, t.Tags...)
}

// PrimaryInvestment is a funding round in the primary market.
type PrimaryInvestment struct {
	ID        int      `json:"id"`
	Company   string   `json:"company"`
	Amount    string   `json:"amount,omitempty"`
	Round     string   `json:"round,omitempty"`
	Investors []string `json:"investors,omitempty"`
	Valuation string   `json:"valuation,omitempty"`
	Content   string   `json:"content"`
}

// MatchFields returns the fields term matching runs against.
func (p PrimaryInvestment) MatchFields() []string {
	return []string{p.Content, p.Company, p.Round}
}

// SecondaryInvestment is a public-market movement entry.
type SecondaryInvestment struct {
	ID      int    `json:"id"`
	Ticker  string `json:"ticker"`
	Price   string `json:"price,omitempty"`
	Change  string `json:"change,omitempty"`
	Content string `json:"content"`
}

// MatchFields returns the fields term matching runs against.
func (s SecondaryInvestment) MatchFields() []string {
	return []string{s.Content, s.Ticker}
}

// MergerAcquisition is an M&A deal entry.
type MergerAcquisition struct {
	ID       int    `json:"id"`
	Acquirer string `json:"acquirer"`
	Target   string `json:"target"`
	Value    string `json:"dealValue,omitempty"`
	DealType string `json:"dealType,omitempty"`
	Content  string `json:"content"`
}

// MatchFields returns the fields term matching runs against.
func (m MergerAcquisition) MatchFields() []string {
	return []string{m.Content, m.Acquirer, m.Target, m.DealType}
}

// Tip is a practical usage tip entry.
type Tip struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Tip      string `json:"tip,omitempty"`
	Content  string `json:"content"`
}

// MatchFields returns the fields term matching runs against.
func (t Tip) MatchFields() []string {
	return []string{t.Content, t.Tip, t.Category}
}

// InvestmentData groups the three investment lists of one language.
type InvestmentData struct {
	Primary   []PrimaryInvestment   `json:"primaryMarket,omitempty"`
	Secondary []SecondaryInvestment `json:"secondaryMarket,omitempty"`
	MA        []MergerAcquisition   `json:"ma,omitempty"`
}

// TechDocument and TipsDocument are keyed by language code. The investment
// document nests the other way around: category first, then language.
type (
	TechDocument map[string][]TechItem
	TipsDocument map[string][]Tip
)

// InvestmentDocument is the investment payload shape.
type InvestmentDocument struct {
	Primary   map[string][]PrimaryInvestment   `json:"primaryMarket"`
	Secondary map[string][]SecondaryInvestment `json:"secondaryMarket"`
	MA        map[string][]MergerAcquisition   `json:"ma"`
}

// ForLanguage resolves one language's investment lists. Missing language
// keys yield empty lists.
func (d InvestmentDocument) ForLanguage(lang string) InvestmentData {
	return InvestmentData{
		Primary:   d.Primary[lang],
		Secondary: d.Secondary[lang],
		MA:        d.MA[lang],
	}
}

// PeriodContent is the per-language content of one period after the three
// category documents have been resolved for a single language.
type PeriodContent struct {
	Tech       []TechItem
	Investment InvestmentData
	Tips       []Tip
}
