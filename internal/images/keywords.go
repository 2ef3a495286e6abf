package images

import "strings"

// topicKeywords maps a topic word that may appear in a description to the
// search keywords used against the image API. Ordered: the first topic whose
// name appears in the description wins.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"coffee", []string{"coffee", "cafe", "espresso", "latte", "barista"}},
	{"restaurant", []string{"restaurant", "food", "dining", "cuisine", "chef"}},
	{"portfolio", []string{"office", "workspace", "professional", "desk", "modern"}},
	{"photography", []string{"camera", "photography", "photos", "gallery", "art"}},
	{"fitness", []string{"fitness", "gym", "workout", "exercise", "health"}},
	{"tech", []string{"technology", "computer", "coding", "startup", "innovation"}},
	{"fashion", []string{"fashion", "clothing", "style", "boutique", "shopping"}},
	{"travel", []string{"travel", "vacation", "destination", "adventure", "beach"}},
	{"food", []string{"food", "cooking", "ingredients", "kitchen", "recipe"}},
	{"shop", []string{"store", "shopping", "products", "retail", "display"}},
}

// defaultKeywords is used when no topic matches the description.
var defaultKeywords = []string{"modern", "business", "professional"}

// ExtractKeywords derives image search keywords from a website description.
// The first matching topic contributes its first three keywords; unmatched
// descriptions get a generic business set. Deterministic and total.
func ExtractKeywords(description string) []string {
	d := strings.ToLower(description)
	for _, t := range topicKeywords {
		if strings.Contains(d, t.topic) {
			out := make([]string, 3)
			copy(out, t.keywords[:3])
			return out
		}
	}
	out := make([]string, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}
