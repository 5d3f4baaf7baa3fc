package services

import (
	"hospital-manager-api/internal/apperr"
)

// remoteCheckErr reclassifies any non-Conflict failure coming back from a
// remote dependency check, so a down collaborator is never mistaken for a
// domain conflict. The original error stays wrapped for the logs.
func remoteCheckErr(err error) error {
	if apperr.KindOf(err) == apperr.KindConflict {
		return err
	}

	return apperr.RemoteUnavailable("dependency check failed", err)
}
