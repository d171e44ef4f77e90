// Package model provides domain types for legislative bills.
package model

// Bill represents one legislative proposal within a session, as returned by
// the upstream legislative API. Details and Actions arrive lazily: a bare
// bill record may be enriched later by separate fetches.
type Bill struct {
	// BillName is the identifier, e.g. "SB0123" or "HB1001". Its prefix
	// determines the chamber of origin.
	BillName string `json:"billName"`
	// Type is the submitting legislator's relationship to the bill:
	// authored, coauthored, sponsored or cosponsored.
	Type string `json:"type,omitempty"`
	// Description is a short human-readable summary.
	Description string `json:"description,omitempty"`
	// Details carries the enriched bill record, when fetched.
	Details *Details `json:"details,omitempty"`
	// Actions is the chronological action log, when fetched. Not guaranteed
	// pre-sorted; timing computations must sort by date first.
	Actions []Action `json:"actions,omitempty"`
}

// Key identifies a bill within a working set. Bills are deduplicated by
// (billName, type) when query results are merged.
func (b Bill) Key() string {
	return b.BillName + "|" + b.Type
}

// Details is the enriched portion of a bill record.
type Details struct {
	Title         string         `json:"title,omitempty"`
	Description   string         `json:"description,omitempty"`
	LatestVersion *LatestVersion `json:"latestVersion,omitempty"`
	Authors       []Participant  `json:"authors,omitempty"`
	Coauthors     []Participant  `json:"coauthors,omitempty"`
	Sponsors      []Participant  `json:"sponsors,omitempty"`
	Cosponsors    []Participant  `json:"cosponsors,omitempty"`
}

// Digest returns the latest-version digest text, or "" when absent.
func (d *Details) Digest() string {
	if d == nil || d.LatestVersion == nil {
		return ""
	}
	return d.LatestVersion.Digest
}

// LatestVersion holds the most recent printed version of a bill.
type LatestVersion struct {
	Digest string `json:"digest,omitempty"`
}

// Participant is a legislator's relationship to one bill.
type Participant struct {
	// FullName is the display name; may include an honorific.
	FullName string `json:"fullName"`
	// Party is the free-text party label from the upstream API.
	Party string `json:"party,omitempty"`
	// Position is an optional leadership title, e.g. "Speaker".
	Position string `json:"position,omitempty"`
	// Committees lists committee memberships with roles.
	Committees []CommitteeMembership `json:"committees,omitempty"`
}

// CommitteeMembership is one committee seat held by a participant.
type CommitteeMembership struct {
	Role string `json:"role,omitempty"`
	Name string `json:"name,omitempty"`
}

// Action is one chronological legislative event on a bill.
type Action struct {
	// Date is an ISO-parseable timestamp.
	Date string `json:"date"`
	// Description is free text; all classification is derived from it.
	Description string `json:"description"`
	// Day is the session-day identifier, independent of Date.
	Day string `json:"day,omitempty"`
}

// Legislator is a member of the assembly, as returned by the legislators
// endpoint.
type Legislator struct {
	FullName string `json:"fullName"`
	Party    string `json:"party,omitempty"`
	Chamber  string `json:"chamber,omitempty"`
	District string `json:"district,omitempty"`
}
