package membership

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

var errForbidden = errors.New("HTTP 403: Forbidden")

// fakeGitHub serves canned organization, collaborator and membership data
type fakeGitHub struct {
	orgs          []string
	orgsErr       error
	collaborators map[string][]string
	listingErrs   map[string]error
	// members maps "org/username" (lower-cased username) to the direct check result
	members    map[string]bool
	checkErrs  map[string]error
	mu         sync.Mutex
	checkCalls map[string]int
}

func (f *fakeGitHub) EnterpriseOrganizations(ctx context.Context, enterprise string) ([]string, error) {
	if f.orgsErr != nil {
		return nil, f.orgsErr
	}
	return f.orgs, nil
}

func (f *fakeGitHub) OutsideCollaborators(ctx context.Context, org string) ([]string, error) {
	if err := f.listingErrs[org]; err != nil {
		return nil, err
	}
	return f.collaborators[org], nil
}

func (f *fakeGitHub) IsMember(ctx context.Context, org, username string) (bool, error) {
	key := org + "/" + strings.ToLower(username)

	f.mu.Lock()
	if f.checkCalls == nil {
		f.checkCalls = make(map[string]int)
	}
	f.checkCalls[key]++
	f.mu.Unlock()

	if err := f.checkErrs[key]; err != nil {
		return false, err
	}
	if f.members[key] {
		return true, nil
	}
	return false, errors.New("HTTP 404: Not Found")
}

func (f *fakeGitHub) calls(org, username string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkCalls[org+"/"+strings.ToLower(username)]
}

// recordingReporter captures milestones
type recordingReporter struct {
	mu          sync.Mutex
	cacheErrors map[string]error
	cacheSizes  map[string]int
	resolved    []types.Organization
	users       int
	implicated  int
	completed   bool
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{cacheErrors: map[string]error{}, cacheSizes: map[string]int{}}
}

func (r *recordingReporter) DirectoryResolved(enterprise string, orgs []types.Organization) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = orgs
}

func (r *recordingReporter) CacheBuilt(org string, collaborators int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheSizes[org] = collaborators
	if err != nil {
		r.cacheErrors[org] = err
	}
}

func (r *recordingReporter) EngineCompleted(users int, implicated int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = users
	r.implicated = implicated
	r.completed = true
}
