// Package authz holds the record-level access predicates. The postgres
// storage evaluates the same rules inside its conditional writes; the in
// memory storage, the watch hub and the search index call these directly.
package authz

import (
	"strings"

	"tracker-grpc/internal/models"
)

// DefaultSuperuserName is the display name granted the task-only override:
// a caller with this name (compared case-insensitively) may delete or
// check off any task, including private tasks of other users. The override
// never applies to projects and never to privacy toggling.
const DefaultSuperuserName = "Jon"

// Actor is a resolved caller identity. A nil *Actor means anonymous.
type Actor struct {
	UserId   int64
	Username string
	Email    string
}

func IsSuperuser(username, superuser string) bool {
	return superuser != "" && strings.EqualFold(username, superuser)
}

// CanView reports whether a viewer may receive the record over a
// subscription or list. viewerId 0 means anonymous.
func CanView(r *models.Record, viewerId int64) bool {
	return !r.Private || r.OwnerId == viewerId
}

// CanDelete is the guard for delete and for the completion toggle: the
// record is public, or the actor owns it, or (tasks only) the actor is the
// superuser.
func CanDelete(r *models.Record, actor *Actor, superuser string) bool {
	if actor == nil {
		return false
	}
	if !r.Private || r.OwnerId == actor.UserId {
		return true
	}
	return r.Kind == models.KindTask && IsSuperuser(actor.Username, superuser)
}

// CanSetChecked shares the delete guard.
func CanSetChecked(r *models.Record, actor *Actor, superuser string) bool {
	return CanDelete(r, actor, superuser)
}

// CanSetPrivate requires strict ownership. No superuser or public-record
// exception.
func CanSetPrivate(r *models.Record, actor *Actor) bool {
	return actor != nil && r.OwnerId == actor.UserId
}
