package core

// Role identifies a syllable-position sound class in a pattern.
type Role rune

// Pattern roles. Optional is not a role: it conditionally deletes the
// phone generated by the immediately preceding token.
const (
	RoleConsonant Role = 'C'
	RoleVowel     Role = 'V'
	RoleSibilant  Role = 'S'
	RoleFinal     Role = 'F'
	RoleLiquid    Role = 'L'

	Optional = '?'
)

// Roles lists every valid role token.
var Roles = []Role{RoleConsonant, RoleVowel, RoleSibilant, RoleFinal, RoleLiquid}

// IsRole reports whether r is a known role token.
func IsRole(r rune) bool {
	for _, role := range Roles {
		if rune(role) == r {
			return true
		}
	}
	return false
}

// Pattern is an ordered template of role tokens and optional markers,
// e.g. "CVC" or "S?CVF?".
type Pattern string

// Tokens returns the pattern as a rune sequence.
func (p Pattern) Tokens() []rune {
	return []rune(string(p))
}

// Length is the token count of the pattern, optional markers included.
// Name length bounds are derived from this value.
func (p Pattern) Length() int {
	return len([]rune(string(p)))
}

// References reports whether the pattern uses the given role.
func (p Pattern) References(role Role) bool {
	for _, t := range p.Tokens() {
		if t == rune(role) {
			return true
		}
	}
	return false
}
