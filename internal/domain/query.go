package domain

// TopicQuery is a normalized topic page request. Construct it with
// NewTopicQuery rather than directly so the lenient parameter rules are
// applied consistently.
type TopicQuery struct {
	Lang    string
	Topic   string
	Section Section
	Period  string
	Page    int
}

// NewTopicQuery normalizes raw request parameters for the topic page.
// Unsupported languages fall back to the default, unknown sections to
// "all", and non-positive or malformed pages to one. The period is kept
// as-is here; whether it is honored depends on the periods actually
// available for the topic, which only the search pipeline knows.
func NewTopicQuery(lang, topic, section, period, page string) TopicQuery {
	return TopicQuery{
		Lang:    NormalizeLanguage(lang),
		Topic:   topic,
		Section: ParseSection(section),
		Period:  period,
		Page:    ParsePositiveInt(page, 1),
	}
}
