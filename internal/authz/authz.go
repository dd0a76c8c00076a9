// Package authz resolves journal, post and metric ids to read and write
// capabilities for the calling identity.
//
// Posts and metrics inherit their capabilities from the journal that owns
// them. A missing resource and a denied one produce the same
// *domain.AuthorizationError so callers cannot probe for existence.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// Scope names a resource kind a Context can carry a capability for.
type Scope string

const (
	ScopeJournal Scope = "journal"
	ScopePost    Scope = "post"
	ScopeMetric  Scope = "metric"
)

// Capability is the resolved access to one resource.
type Capability struct {
	ID    uuid.UUID
	Read  bool
	Write bool
}

type accessRepo interface {
	AccessByJournal(ctx context.Context, journalID uuid.UUID) (domain.JournalAccess, error)
	AccessByPost(ctx context.Context, postID uuid.UUID) (domain.JournalAccess, error)
	AccessByMetric(ctx context.Context, metricID uuid.UUID) (domain.JournalAccess, error)
}

// Resolver computes capabilities for one identity. It is cheap to build and
// meant to live for a single request.
type Resolver struct {
	access   accessRepo
	identity domain.Identity
}

// NewResolver creates a Resolver for identity.
func NewResolver(access accessRepo, identity domain.Identity) *Resolver {
	return &Resolver{access: access, identity: identity}
}

// Identity returns the identity the resolver acts for.
func (r *Resolver) Identity() domain.Identity { return r.identity }

// Journal resolves the journal scope.
func (r *Resolver) Journal(ctx context.Context, journalID uuid.UUID) (Context, error) {
	access, err := r.load(ctx, ScopeJournal, journalID, r.access.AccessByJournal)
	if err != nil {
		return Context{}, err
	}
	journal, err := r.check(access)
	if err != nil {
		return Context{}, err
	}
	return newContext(r.identity, map[Scope]Capability{ScopeJournal: journal}), nil
}

// Post resolves the journal and post scopes.
func (r *Resolver) Post(ctx context.Context, postID uuid.UUID) (Context, error) {
	access, err := r.load(ctx, ScopePost, postID, r.access.AccessByPost)
	if err != nil {
		return Context{}, err
	}
	journal, err := r.check(access)
	if err != nil {
		return Context{}, err
	}
	return newContext(r.identity, map[Scope]Capability{
		ScopeJournal: journal,
		ScopePost:    inherit(journal, postID),
	}), nil
}

// Metric resolves the journal and metric scopes.
func (r *Resolver) Metric(ctx context.Context, metricID uuid.UUID) (Context, error) {
	access, err := r.load(ctx, ScopeMetric, metricID, r.access.AccessByMetric)
	if err != nil {
		return Context{}, err
	}
	journal, err := r.check(access)
	if err != nil {
		return Context{}, err
	}
	return newContext(r.identity, map[Scope]Capability{
		ScopeJournal: journal,
		ScopeMetric:  inherit(journal, metricID),
	}), nil
}

// PostMetric resolves the journal, post and metric scopes. The post and the
// metric must belong to the same journal.
func (r *Resolver) PostMetric(ctx context.Context, postID, metricID uuid.UUID) (Context, error) {
	postAccess, err := r.load(ctx, ScopePost, postID, r.access.AccessByPost)
	if err != nil {
		return Context{}, err
	}
	metricAccess, err := r.load(ctx, ScopeMetric, metricID, r.access.AccessByMetric)
	if err != nil {
		return Context{}, err
	}
	if postAccess.JournalID != metricAccess.JournalID {
		return Context{}, domain.NewAuthorizationError(string(ScopeMetric), metricID, r.identity)
	}
	journal, err := r.check(postAccess)
	if err != nil {
		return Context{}, err
	}
	return newContext(r.identity, map[Scope]Capability{
		ScopeJournal: journal,
		ScopePost:    inherit(journal, postID),
		ScopeMetric:  inherit(journal, metricID),
	}), nil
}

func (r *Resolver) load(
	ctx context.Context,
	scope Scope,
	id uuid.UUID,
	fetch func(context.Context, uuid.UUID) (domain.JournalAccess, error),
) (domain.JournalAccess, error) {
	access, err := fetch(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.JournalAccess{}, domain.NewAuthorizationError(string(scope), id, r.identity)
		}
		return domain.JournalAccess{}, fmt.Errorf("load %s access: %w", scope, err)
	}
	return access, nil
}

// check applies the journal access rule: the owner writes; the owner,
// listed readers and everyone for a public journal read.
func (r *Resolver) check(access domain.JournalAccess) (Capability, error) {
	write := !r.identity.IsAnonymous() && access.OwnerID == r.identity.UserID
	read := write ||
		(!r.identity.IsAnonymous() && access.HasReader(r.identity.UserID)) ||
		access.IsPublic
	if !read {
		return Capability{}, domain.NewAuthorizationError(string(ScopeJournal), access.JournalID, r.identity)
	}
	return Capability{ID: access.JournalID, Read: read, Write: write}, nil
}

func inherit(journal Capability, id uuid.UUID) Capability {
	return Capability{ID: id, Read: journal.Read, Write: journal.Write}
}
