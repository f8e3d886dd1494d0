// Package kb holds the built-in knowledge-base catalog and the
// relevance ranker that scores articles against a triaged incident.
package kb

import "github.com/itsmlab/itsmd/internal/triage"

// Article is one immutable knowledge-base entry. The catalog is fixed
// at build time and not user-modifiable at runtime.
type Article struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Tags       []string          `json:"tags"`
	Categories []triage.Category `json:"categories"`
	Body       string            `json:"body"`
}

// DefaultCatalog returns the built-in article catalog. Order matters:
// ranking ties are broken by catalog position.
func DefaultCatalog() []Article {
	return []Article{
		{
			ID:         "kb-1001",
			Title:      "VPN Troubleshooting",
			Tags:       []string{"vpn", "network", "connectivity"},
			Categories: []triage.Category{triage.CategoryNetwork},
			Body:       "KB-1001: VPN Troubleshooting\n- Confirm VPN client version\n- Collect logs\n- Check known outages\n",
		},
		{
			ID:         "kb-2001",
			Title:      "SSO Login Failures",
			Tags:       []string{"sso", "saml", "oauth", "mfa", "login"},
			Categories: []triage.Category{triage.CategoryIdentityAccess},
			Body:       "KB-2001: SSO Login Failures\n- Check IdP status\n- Confirm MFA method\n- Verify app SAML config changes\n",
		},
		{
			ID:         "kb-3001",
			Title:      "Password Reset (Standard)",
			Tags:       []string{"password", "login", "mfa"},
			Categories: []triage.Category{triage.CategoryIdentityAccess},
			Body:       "KB-3001: Password Reset (Standard)\n- Verify identity\n- Reset via IAM portal\n- Confirm enrollment in MFA\n",
		},
	}
}

// Find returns the catalog article with the given id.
func Find(catalog []Article, id string) (Article, bool) {
	want := triage.Normalize(id)
	for _, a := range catalog {
		if a.ID == want {
			return a, true
		}
	}
	return Article{}, false
}
