package domain

// Keyword is a salient term extracted from a query.
type Keyword struct {
	// Term is a unigram or bigram, lower-cased.
	Term string `json:"term"`

	// Weight is the aggregate TF-IDF weight across query segments.
	Weight float64 `json:"weight"`
}

// Terms returns the term strings of keywords, preserving order.
func Terms(keywords []Keyword) []string {
	terms := make([]string, len(keywords))
	for i, k := range keywords {
		terms[i] = k.Term
	}
	return terms
}
