package membership

import (
	"context"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// MembershipChecker asks GitHub whether a user is a direct member of an organization
type MembershipChecker interface {
	IsMember(ctx context.Context, org, username string) (bool, error)
}

// Resolver determines the relationship between one user and one organization
type Resolver struct {
	Checker MembershipChecker
}

// Check returns MembershipMember when the direct check affirms membership, whatever the
// cache holds. Otherwise, including when the check fails for any reason, the collaborator
// cache decides between MembershipOutsideCollaborator and MembershipNone.
func (r *Resolver) Check(ctx context.Context, org types.Organization, username string) types.MembershipType {
	isMember, err := r.Checker.IsMember(ctx, org.Login, username)
	if err == nil && isMember {
		return types.MembershipMember
	}
	if org.HasOutsideCollaborator(username) {
		return types.MembershipOutsideCollaborator
	}
	return types.MembershipNone
}
