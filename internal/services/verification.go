package services

import (
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/internal/security"
	"github.com/wfxclan/clanbot/pkg/errors"
	"github.com/wfxclan/clanbot/pkg/logger"
)

// RolePlatform is the slice of the chat platform the verification
// workflow needs: nickname and role management for guild members.
type RolePlatform interface {
	SetNickname(userID, nick string) error
	AddRole(userID, roleID string) error
	RemoveRole(userID, roleID string) error
}

type memberStore interface {
	UpsertMember(member *models.Member) error
}

type memberCache interface {
	RefreshMembers() error
}

// VerificationService drives the unverified -> verified transition.
type VerificationService struct {
	store    memberStore
	platform RolePlatform
	cache    memberCache

	unverifiedRoleID string
	verifiedRoleID   string
}

func NewVerificationService(store memberStore, platform RolePlatform, cache memberCache, unverifiedRoleID, verifiedRoleID string) *VerificationService {
	return &VerificationService{
		store:            store,
		platform:         platform,
		cache:            cache,
		unverifiedRoleID: unverifiedRoleID,
		verifiedRoleID:   verifiedRoleID,
	}
}

// IsVerified reports whether the given role set already carries the
// verified role.
func (s *VerificationService) IsVerified(roleIDs []string) bool {
	for _, id := range roleIDs {
		if id == s.verifiedRoleID {
			return true
		}
	}
	return false
}

// Submit validates the submitted nickname and, on success, applies the
// verification side effects in order: set the guild nickname, grant the
// verified role, revoke the unverified role, upsert the member row.
//
// The steps are individually fallible and are not rolled back: a failure
// aborts the remaining steps and leaves the earlier ones applied. Every
// step is idempotent, so re-running /verify with the same nickname
// converges to the fully verified state.
//
// Returns the nickname that was applied.
func (s *VerificationService) Submit(userID, nickname string) (string, error) {
	nickname = security.SanitizeString(nickname)

	if !models.ValidGameNick(nickname) {
		return "", errors.New(errors.ErrCodeValidation, "nickname does not match the clan format")
	}

	if err := s.platform.SetNickname(userID, nickname); err != nil {
		return "", errors.Wrap(err, errors.ErrCodePlatformError, "failed to set nickname")
	}
	if err := s.platform.AddRole(userID, s.verifiedRoleID); err != nil {
		return "", errors.Wrap(err, errors.ErrCodePlatformError, "failed to grant verified role")
	}
	if err := s.platform.RemoveRole(userID, s.unverifiedRoleID); err != nil {
		return "", errors.Wrap(err, errors.ErrCodePlatformError, "failed to revoke unverified role")
	}

	member := &models.Member{
		DiscordID: userID,
		GameNick:  nickname,
	}
	if err := s.store.UpsertMember(member); err != nil {
		return "", err
	}

	// Make the new row visible to /members and /profile before we confirm.
	// A refresh failure keeps the stale snapshot and must not undo a
	// verification that already happened.
	if err := s.cache.RefreshMembers(); err != nil {
		logger.Warn("Member cache refresh after verification failed", "user_id", userID, "error", err)
	}

	return nickname, nil
}
