package service

import "github.com/google/uuid"

// CanMutate is the ownership predicate applied before every blog,
// comment and profile mutation: only the author may modify or delete.
func CanMutate(actingUserID, ownerID uuid.UUID) bool {
	return actingUserID == ownerID
}
