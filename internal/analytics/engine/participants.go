package engine

import (
	"strings"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

// extractParticipants flattens a bill's author/coauthor/sponsor/cosponsor
// lists, in that order, into a single ordered collection. Participants with
// an empty full name are dropped. A bill without details yields nil.
func extractParticipants(details *billmodel.Details) []billmodel.Participant {
	if details == nil {
		return nil
	}

	var participants []billmodel.Participant
	for _, list := range [][]billmodel.Participant{
		details.Authors,
		details.Coauthors,
		details.Sponsors,
		details.Cosponsors,
	} {
		for _, p := range list {
			if p.FullName == "" {
				continue
			}
			participants = append(participants, p)
		}
	}
	return participants
}

// chairsCommittee reports whether any of the participant's committee roles
// counts as committee leadership.
func chairsCommittee(p billmodel.Participant) bool {
	for _, membership := range p.Committees {
		if strings.Contains(strings.ToLower(membership.Role), "chair") {
			return true
		}
	}
	return false
}

// holdsLeadershipTitle reports whether the participant's position matches a
// configured leadership title.
func holdsLeadershipTitle(p billmodel.Participant, titles []string) bool {
	if p.Position == "" {
		return false
	}
	position := strings.ToLower(p.Position)
	for _, title := range titles {
		if strings.Contains(position, strings.ToLower(title)) {
			return true
		}
	}
	return false
}

// pairKey builds the canonical key for an unordered pair: both elements
// sorted, joined by sep.
func pairKey(a, b, sep string) string {
	if a > b {
		a, b = b, a
	}
	return a + sep + b
}
