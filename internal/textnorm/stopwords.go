package textnorm

// stopwords contains English function words and high-frequency auxiliaries
// that carry no discriminative value for complaint classification.
var stopwords = map[string]struct{}{
	// Pronouns
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
	"ourselves": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {}, "he": {}, "him": {}, "his": {}, "himself": {}, "she": {},
	"her": {}, "hers": {}, "herself": {}, "it": {}, "its": {}, "itself": {},
	"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	// Interrogatives and relatives
	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
	"these": {}, "those": {},
	// Copulas and auxiliaries
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {}, "will": {}, "would": {}, "should": {},
	"can": {}, "could": {}, "ought": {}, "shall": {}, "may": {}, "might": {},
	"must": {},
	// Articles and conjunctions
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {},
	"because": {}, "as": {}, "until": {}, "while": {},
	// Prepositions
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {}, "from": {},
	"up": {}, "down": {}, "in": {}, "out": {}, "on": {}, "off": {}, "over": {},
	"under": {},
	// Adverbs and qualifiers
	"again": {}, "further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {},
	"own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"just": {}, "now": {},
	// Contraction remnants left after punctuation stripping
	"s": {}, "t": {}, "don": {}, "won": {}, "isn": {}, "aren": {}, "wasn": {},
	"weren": {}, "hasn": {}, "haven": {}, "hadn": {}, "doesn": {}, "didn": {},
	"couldn": {}, "shouldn": {}, "wouldn": {}, "mustn": {}, "needn": {},
	"shan": {}, "ain": {}, "ll": {}, "ve": {}, "re": {}, "d": {}, "m": {},
	"o": {}, "y": {}, "ma": {},
}

// IsStopword reports whether the lower-cased token is in the stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
