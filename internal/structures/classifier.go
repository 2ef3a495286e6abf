package structures

import "strings"

// Detection keyword sets. Centralized as data so the classifier tests stay
// declarative; each set is matched as plain substrings of the lower-cased
// description.
var (
	ecommerceKeywords = []string{
		"shop", "store", "ecommerce", "e-commerce", "products",
		"cart", "buy", "sell", "checkout", "payment",
	}
	authKeywords = []string{
		"login", "signup", "authentication", "user account",
		"register", "dashboard", "profile", "sign up", "sign in",
	}
	blogKeywords = []string{
		"blog", "articles", "posts", "cms", "content management",
	}
	portfolioKeywords = []string{
		"portfolio", "showcase", "gallery", "projects", "work",
	}
	multiPageKeywords = []string{
		"pages", "about page", "contact page", "multiple pages",
		"navigation", "menu", "services page",
	}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DetermineStructure classifies a website description onto one structure
// template. Matching is first-match-wins in a fixed priority order: a
// description mentioning both "shop" and "login" is an ecommerce site, not a
// web application. Callers must preserve this ordering to stay contract
// compatible. Total: every input maps to exactly one category, with
// landing_page as the catch-all.
func DetermineStructure(description string) StructureInfo {
	d := strings.ToLower(description)

	switch {
	case containsAny(d, ecommerceKeywords):
		return Lookup(Ecommerce)
	case containsAny(d, authKeywords):
		return Lookup(WebApplication)
	case containsAny(d, blogKeywords):
		return Lookup(Blog)
	case containsAny(d, portfolioKeywords):
		return Lookup(Portfolio)
	case containsAny(d, multiPageKeywords):
		return Lookup(MultiPage)
	default:
		return Lookup(LandingPage)
	}
}
