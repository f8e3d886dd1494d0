package resources

import (
	"fmt"
	"strings"
)

// Resource URIs use the itsm:// scheme:
//
//	itsm://policies/incident-severity
//	itsm://kb/{article_id}
//	itsm://cases/{case_id}/research-plan
//
// Locator owns this syntax; the core only ever sees the id components.
const (
	PolicyURI        = "itsm://policies/incident-severity"
	kbPrefix         = "itsm://kb/"
	casePrefix       = "itsm://cases/"
	casePlanSuffix   = "/research-plan"
	KBURITemplate    = kbPrefix + "{article_id}"
	CasePlanTemplate = casePrefix + "{case_id}" + casePlanSuffix
)

// Locator encodes core identifiers as itsm:// resource URIs. It
// satisfies desk.RefEncoder.
type Locator struct{}

// Policy returns the severity-policy resource URI.
func (Locator) Policy() string { return PolicyURI }

// KBArticle returns the resource URI for a KB article id.
func (Locator) KBArticle(articleID string) string {
	return kbPrefix + articleID
}

// CasePlan returns the research-plan resource URI for a case id.
func (Locator) CasePlan(caseID string) string {
	return fmt.Sprintf("%s%s%s", casePrefix, caseID, casePlanSuffix)
}

// articleIDFromURI extracts the article id from an itsm://kb/ URI.
func articleIDFromURI(uri string) string {
	return strings.TrimPrefix(uri, kbPrefix)
}

// caseIDFromURI extracts the case id from an itsm://cases/.../research-plan URI.
func caseIDFromURI(uri string) string {
	id := strings.TrimPrefix(uri, casePrefix)
	return strings.TrimSuffix(id, casePlanSuffix)
}
