package identity

import (
	"strings"

	"PhotoVault/internal/apperr"
)

// Identity is the verified caller of a single request. It is rebuilt from
// token claims on every request and never persisted.
type Identity struct {
	SubjectID string
	Email     string
	Role      string
}

// Extractor turns verified claims into an Identity and decides which
// roles see the full photo corpus.
type Extractor struct {
	elevatedRoles map[string]struct{}
	defaultRole   string
}

// NewExtractor builds an Extractor. Role matching is case-insensitive.
func NewExtractor(elevatedRoles []string, defaultRole string) *Extractor {
	set := make(map[string]struct{}, len(elevatedRoles))
	for _, role := range elevatedRoles {
		set[strings.ToLower(role)] = struct{}{}
	}
	return &Extractor{elevatedRoles: set, defaultRole: defaultRole}
}

// FromClaims builds an Identity from verified token claims. Subject and
// email are mandatory; a request without them got past the auth layer by
// mistake, so this is treated as an authorization fault.
func (e *Extractor) FromClaims(subjectID, email, role string) (Identity, error) {
	if subjectID == "" {
		return Identity{}, apperr.New(apperr.Authorization, "missing subject claim")
	}
	if email == "" {
		return Identity{}, apperr.New(apperr.Authorization, "missing email claim")
	}
	if role == "" {
		role = e.defaultRole
	}
	return Identity{SubjectID: subjectID, Email: email, Role: role}, nil
}

// IsElevated reports whether the identity's role grants unrestricted
// visibility across all owners' photos.
func (e *Extractor) IsElevated(id Identity) bool {
	_, ok := e.elevatedRoles[strings.ToLower(id.Role)]
	return ok
}
