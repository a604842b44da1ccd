package types

import (
	"net/http"

	"github.com/studybuddy-ai/studybuddy/pkg/errors"
)

// ScopeKind selects which storage partition a request operates on.
type ScopeKind string

const (
	SCOPE_KIND_WORKSPACE  = ScopeKind("workspace")
	SCOPE_KIND_QUICKSTUDY = ScopeKind("quick_study")
)

// Scope is the logical partition similarity search is restricted to, either a
// persistent workspace or an ephemeral quick-study session. It is resolved
// once at the request boundary and threaded as a value from there on.
type Scope struct {
	Kind ScopeKind
	ID   string
}

func (s Scope) IsZero() bool {
	return s.ID == ""
}

// ResolveScope maps the two mutually exclusive request identifiers onto a
// Scope. Workspace wins when both are present, neither is a client error.
func ResolveScope(workspaceID, quickStudyID string) (Scope, error) {
	switch {
	case workspaceID != "":
		return Scope{Kind: SCOPE_KIND_WORKSPACE, ID: workspaceID}, nil
	case quickStudyID != "":
		return Scope{Kind: SCOPE_KIND_QUICKSTUDY, ID: quickStudyID}, nil
	default:
		return Scope{}, errors.New("types.ResolveScope", "no workspace_id or quick_study_id provided", nil).Code(http.StatusBadRequest)
	}
}
