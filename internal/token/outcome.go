package token

import "strings"

// OutcomeKind classifies what an Authorization header turned out to hold.
// Exactly one case applies per request; the Auth Guard dispatches on it
// exhaustively so every route maps header states to responses identically.
type OutcomeKind int

const (
	// OutcomeAbsent: no Authorization header on the request.
	OutcomeAbsent OutcomeKind = iota
	// OutcomeEmpty: header present but empty after stripping the optional
	// "Bearer " prefix. Callers cannot distinguish this from OutcomeAbsent.
	OutcomeEmpty
	// OutcomeMalformed: value is not three dot-separated segments.
	OutcomeMalformed
	// OutcomeInvalid: well-formed token that failed verification, either
	// bad signature or expired. The two are deliberately collapsed.
	OutcomeInvalid
	// OutcomeValid: token verified; Claims carries the identity.
	OutcomeValid
)

type Outcome struct {
	Kind   OutcomeKind
	Claims Claims
}

// InspectHeader runs the full header-to-identity pipeline. present reports
// whether the Authorization header existed at all; value is its raw content.
// The "Bearer " prefix is optional and case-sensitive.
func (c *Codec) InspectHeader(value string, present bool) Outcome {
	if !present {
		return Outcome{Kind: OutcomeAbsent}
	}
	raw := strings.TrimPrefix(value, "Bearer ")
	if raw == "" {
		return Outcome{Kind: OutcomeEmpty}
	}
	if !bearerShape.MatchString(raw) {
		return Outcome{Kind: OutcomeMalformed}
	}
	claims, err := c.Verify(raw)
	if err != nil {
		return Outcome{Kind: OutcomeInvalid}
	}
	return Outcome{Kind: OutcomeValid, Claims: claims}
}
