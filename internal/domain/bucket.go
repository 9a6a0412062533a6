package domain

// Section identifies which part of a topic page is shown.
type Section string

const (
	SectionAll        Section = "all"
	SectionTech       Section = "tech"
	SectionInvestment Section = "investment"
	SectionTips       Section = "tips"
)

// Sections lists the valid section values in display order.
var Sections = []Section{SectionAll, SectionTech, SectionInvestment, SectionTips}

// ParseSection maps a raw query value onto a Section. Unknown or empty
// values fall back to SectionAll; topic page parameters are lenient.
func ParseSection(raw string) Section {
	switch Section(raw) {
	case SectionTech, SectionInvestment, SectionTips:
		return Section(raw)
	default:
		return SectionAll
	}
}

// Anchor tags per content list, used in entry permalinks.
const (
	TagTech      = "tech"
	TagPrimary   = "pm"
	TagSecondary = "sm"
	TagMA        = "ma"
	TagTips      = "tips"
)

// PeriodBucket holds the entries of one period that match the topic terms.
type PeriodBucket struct {
	PeriodID  string                `json:"periodId"`
	Tech      []TechItem            `json:"tech,omitempty"`
	Primary   []PrimaryInvestment   `json:"primaryMarket,omitempty"`
	Secondary []SecondaryInvestment `json:"secondaryMarket,omitempty"`
	MA        []MergerAcquisition   `json:"ma,omitempty"`
	Tips      []Tip                 `json:"tips,omitempty"`
}

// BuildBucket filters one period's content against the topic terms. Entry
// order within each list is preserved.
func BuildBucket(periodID string, content PeriodContent, terms []string) PeriodBucket {
	return PeriodBucket{
		PeriodID:  periodID,
		Tech:      filterMatching(content.Tech, terms),
		Primary:   filterMatching(content.Investment.Primary, terms),
		Secondary: filterMatching(content.Investment.Secondary, terms),
		MA:        filterMatching(content.Investment.MA, terms),
		Tips:      filterMatching(content.Tips, terms),
	}
}

// Count returns the total number of entries across all lists.
func (b PeriodBucket) Count() int {
	return len(b.Tech) + len(b.Primary) + len(b.Secondary) + len(b.MA) + len(b.Tips)
}

// IsEmpty reports whether the bucket holds no entries at all.
func (b PeriodBucket) IsEmpty() bool {
	return b.Count() == 0
}

// Project narrows a bucket to one section. SectionAll returns the bucket
// unchanged; other sections zero out the lists that do not belong to them.
func (b PeriodBucket) Project(section Section) PeriodBucket {
	switch section {
	case SectionTech:
		return PeriodBucket{PeriodID: b.PeriodID, Tech: b.Tech}
	case SectionInvestment:
		return PeriodBucket{
			PeriodID:  b.PeriodID,
			Primary:   b.Primary,
			Secondary: b.Secondary,
			MA:        b.MA,
		}
	case SectionTips:
		return PeriodBucket{PeriodID: b.PeriodID, Tips: b.Tips}
	default:
		return b
	}
}

// ProjectBuckets applies Project to every bucket and drops the ones left
// empty by the projection.
func ProjectBuckets(buckets []PeriodBucket, section Section) []PeriodBucket {
	out := make([]PeriodBucket, 0, len(buckets))
	for _, b := range buckets {
		projected := b.Project(section)
		if !projected.IsEmpty() {
			out = append(out, projected)
		}
	}
	return out
}

// PeriodIDs returns the period identifiers of the buckets in order.
func PeriodIDs(buckets []PeriodBucket) []string {
	ids := make([]string, len(buckets))
	for i, b := range buckets {
		ids[i] = b.PeriodID
	}
	return ids
}
