package pagebrief

import "context"

// ClassifiedLink is a link the classifier judged relevant, with an optional
// category hint (e.g., "about page", "careers page").
type ClassifiedLink struct {
	URL      string
	Category string
}

// LinkClassifier asks an LLM which of a page's outbound links are worth
// including as sub-pages (About, Careers, Pricing style pages), excluding
// navigational noise such as login, legal and social-media links.
//
// The classifier's output is advisory. Implementations must run the reply
// through FilterClassified so hallucinated URLs never survive, and must
// return an EPARSE error (not a panic or garbage) when the reply cannot be
// parsed. Callers treat any classification error as "no relevant links".
type LinkClassifier interface {
	Classify(ctx context.Context, seedURL string, candidates []Link) ([]ClassifiedLink, error)
}

// FilterClassified validates LLM-selected links against the candidate set.
// Links whose URL was never offered are dropped, duplicates are collapsed
// (first occurrence wins) and the result is capped at max entries.
// A max of zero or less means no cap.
func FilterClassified(classified []ClassifiedLink, candidates []Link, max int) []ClassifiedLink {
	offered := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		offered[c.URL] = true
	}

	seen := make(map[string]bool, len(classified))
	var out []ClassifiedLink
	for _, cl := range classified {
		if !offered[cl.URL] || seen[cl.URL] {
			continue
		}
		seen[cl.URL] = true
		out = append(out, cl)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
