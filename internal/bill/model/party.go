package model

import "strings"

// Party categories. Every free-text party label normalizes to exactly one.
const (
	PartyDemocrat    = "democrat"
	PartyRepublican  = "republican"
	PartyIndependent = "independent"
)

// Chambers of origin.
const (
	ChamberSenate  = "senate"
	ChamberHouse   = "house"
	ChamberUnknown = "unknown"
)

// PartyCategory normalizes a free-text party label into one of the party
// categories. Unmatched or empty labels count as independent.
func PartyCategory(party string) string {
	p := strings.ToLower(party)
	switch {
	case strings.Contains(p, "democrat"):
		return PartyDemocrat
	case strings.Contains(p, "republican"):
		return PartyRepublican
	default:
		return PartyIndependent
	}
}

// ChamberOf infers the chamber of origin from a bill identifier's prefix.
func ChamberOf(billName string) string {
	upper := strings.ToUpper(billName)
	switch {
	case strings.HasPrefix(upper, "SB"), strings.HasPrefix(upper, "SJR"), strings.HasPrefix(upper, "SR"), strings.HasPrefix(upper, "SC"):
		return ChamberSenate
	case strings.HasPrefix(upper, "HB"), strings.HasPrefix(upper, "HJR"), strings.HasPrefix(upper, "HR"), strings.HasPrefix(upper, "HC"):
		return ChamberHouse
	default:
		return ChamberUnknown
	}
}

// honorificPrefixes are stripped by CleanName before name matching.
var honorificPrefixes = []string{
	"senator ", "sen. ", "sen ",
	"representative ", "rep. ", "rep ",
}

// CleanName strips honorific prefixes and surrounding whitespace from a
// legislator display name.
func CleanName(name string) string {
	cleaned := strings.TrimSpace(name)
	lower := strings.ToLower(cleaned)
	for _, prefix := range honorificPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(cleaned[len(prefix):])
		}
	}
	return cleaned
}
