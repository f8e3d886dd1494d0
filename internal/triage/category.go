package triage

import "strings"

// --- Category enum ---

// Category is the coarse problem-domain bucket used to select
// next-step templates, research-plan triples, and KB ranking.
type Category string

const (
	CategoryNetwork            Category = "network"
	CategoryIdentityAccess     Category = "identity_access"
	CategoryPlatform           Category = "platform"
	CategoryEmailCollaboration Category = "email_collaboration"
	CategoryGeneral            Category = "general"
)

// validCategories is the set of recognized categories.
var validCategories = map[Category]bool{
	CategoryNetwork:            true,
	CategoryIdentityAccess:     true,
	CategoryPlatform:           true,
	CategoryEmailCollaboration: true,
	CategoryGeneral:            true,
}

// ParseCategory normalizes s and reports whether it names a known
// category. Unknown strings return (CategoryGeneral, false).
func ParseCategory(s string) (Category, bool) {
	cat := Category(Normalize(s))
	if validCategories[cat] {
		return cat, true
	}
	return CategoryGeneral, false
}

// --- Keyword classifier ---

// keywordFamilies are evaluated in this exact order; the first family
// with any keyword contained in the text wins. A text mentioning both
// "vpn" and "login" is network, never identity_access.
var keywordFamilies = []struct {
	category Category
	keywords []string
}{
	{CategoryNetwork, []string{"vpn", "wifi", "network", "dns", "latency", "packet loss"}},
	{CategoryIdentityAccess, []string{"login", "sso", "oauth", "saml", "password", "mfa", "2fa"}},
	{CategoryPlatform, []string{"kubernetes", "k8s", "docker", "container", "pod", "deployment"}},
	{CategoryEmailCollaboration, []string{"email", "outlook", "exchange", "mailbox"}},
}

// Classify maps free text to a category by substring containment
// against the keyword families (not tokenization). Texts matching no
// family are general.
func Classify(text string) Category {
	t := strings.ToLower(text)
	for _, family := range keywordFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(t, kw) {
				return family.category
			}
		}
	}
	return CategoryGeneral
}
