package types

import "strings"

// Organization is an enterprise organization together with the outside collaborators
// listed for it when the directory was built. The collaborator set is read-only after
// construction.
type Organization struct {
	Login                string
	OutsideCollaborators map[string]struct{}
}

// NewOrganization builds an Organization, lower-casing every collaborator identity
func NewOrganization(login string, collaborators []string) Organization {
	set := make(map[string]struct{}, len(collaborators))
	for _, c := range collaborators {
		set[strings.ToLower(c)] = struct{}{}
	}
	return Organization{Login: login, OutsideCollaborators: set}
}

// HasOutsideCollaborator reports whether username is a listed outside collaborator
func (o Organization) HasOutsideCollaborator(username string) bool {
	_, ok := o.OutsideCollaborators[strings.ToLower(username)]
	return ok
}

// MembershipType is the relationship between a user and an organization
type MembershipType string

const (
	MembershipMember              MembershipType = "member"
	MembershipOutsideCollaborator MembershipType = "outside_collaborator"
	MembershipNone                MembershipType = "none"
)

// Membership is one non-none relationship of a user
type Membership struct {
	Organization string         `json:"org"`
	Type         MembershipType `json:"type"`
}

// UserMembership holds the relationships found for a single user, in the order the
// organizations were checked. It never contains a MembershipNone entry.
type UserMembership struct {
	Username    string
	Memberships []Membership
}

// Type returns the relationship to org, or MembershipNone
func (u UserMembership) Type(org string) MembershipType {
	for _, m := range u.Memberships {
		if m.Organization == org {
			return m.Type
		}
	}
	return MembershipNone
}
