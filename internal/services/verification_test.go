package services

import (
	"errors"
	"os"
	"testing"

	"github.com/wfxclan/clanbot/internal/models"
	apperrors "github.com/wfxclan/clanbot/pkg/errors"
	"github.com/wfxclan/clanbot/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fakeMemberStore struct {
	members map[string]*models.Member
	err     error
	upserts int
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[string]*models.Member)}
}

func (f *fakeMemberStore) UpsertMember(member *models.Member) error {
	if f.err != nil {
		return f.err
	}
	f.upserts++
	if existing, ok := f.members[member.DiscordID]; ok {
		existing.GameNick = member.GameNick
		return nil
	}
	f.members[member.DiscordID] = member
	return nil
}

type fakePlatform struct {
	nicknames map[string]string
	roles     map[string]map[string]bool

	failSetNick    error
	failAddRole    error
	failRemoveRole error

	calls []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		nicknames: make(map[string]string),
		roles:     make(map[string]map[string]bool),
	}
}

func (f *fakePlatform) SetNickname(userID, nick string) error {
	f.calls = append(f.calls, "set_nickname")
	if f.failSetNick != nil {
		return f.failSetNick
	}
	f.nicknames[userID] = nick
	return nil
}

func (f *fakePlatform) AddRole(userID, roleID string) error {
	f.calls = append(f.calls, "add_role")
	if f.failAddRole != nil {
		return f.failAddRole
	}
	if f.roles[userID] == nil {
		f.roles[userID] = make(map[string]bool)
	}
	f.roles[userID][roleID] = true
	return nil
}

func (f *fakePlatform) RemoveRole(userID, roleID string) error {
	f.calls = append(f.calls, "remove_role")
	if f.failRemoveRole != nil {
		return f.failRemoveRole
	}
	if f.roles[userID] != nil {
		delete(f.roles[userID], roleID)
	}
	return nil
}

type fakeMemberCache struct {
	refreshes int
	err       error
}

func (f *fakeMemberCache) RefreshMembers() error {
	f.refreshes++
	return f.err
}

const (
	testUserID       = "100200300"
	testUnverifiedID = "role-unverified"
	testVerifiedID   = "role-verified"
)

func newTestService(store *fakeMemberStore, platform *fakePlatform, memberCache *fakeMemberCache) *VerificationService {
	return NewVerificationService(store, platform, memberCache, testUnverifiedID, testVerifiedID)
}

func TestVerificationService_Submit_Success(t *testing.T) {
	store := newFakeMemberStore()
	platform := newFakePlatform()
	platform.roles[testUserID] = map[string]bool{testUnverifiedID: true}
	memberCache := &fakeMemberCache{}
	svc := newTestService(store, platform, memberCache)

	applied, err := svc.Submit(testUserID, "WFxPlayer123")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if applied != "WFxPlayer123" {
		t.Errorf("applied nickname = %q, want %q", applied, "WFxPlayer123")
	}

	if platform.nicknames[testUserID] != "WFxPlayer123" {
		t.Errorf("display nickname = %q, want %q", platform.nicknames[testUserID], "WFxPlayer123")
	}
	if !platform.roles[testUserID][testVerifiedID] {
		t.Error("verified role was not granted")
	}
	if platform.roles[testUserID][testUnverifiedID] {
		t.Error("unverified role was not revoked")
	}

	member, ok := store.members[testUserID]
	if !ok {
		t.Fatal("member row was not written")
	}
	if member.GameNick != "WFxPlayer123" {
		t.Errorf("stored game_nick = %q, want %q", member.GameNick, "WFxPlayer123")
	}

	if memberCache.refreshes != 1 {
		t.Errorf("cache refreshes = %d, want 1", memberCache.refreshes)
	}
}

func TestVerificationService_Submit_StepOrder(t *testing.T) {
	store := newFakeMemberStore()
	platform := newFakePlatform()
	svc := newTestService(store, platform, &fakeMemberCache{})

	if _, err := svc.Submit(testUserID, "WFxPlayer"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	want := []string{"set_nickname", "add_role", "remove_role"}
	if len(platform.calls) != len(want) {
		t.Fatalf("platform calls = %v, want %v", platform.calls, want)
	}
	for i := range want {
		if platform.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, platform.calls[i], want[i])
		}
	}
}

func TestVerificationService_Submit_InvalidNickname(t *testing.T) {
	tests := []struct {
		name string
		nick string
	}{
		{
			name: "Missing prefix",
			nick: "Player123",
		},
		{
			name: "Too short",
			nick: "WFxA",
		},
		{
			name: "Too long",
			nick: "WFx456789012345678901",
		},
		{
			name: "Empty",
			nick: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeMemberStore()
			platform := newFakePlatform()
			memberCache := &fakeMemberCache{}
			svc := newTestService(store, platform, memberCache)

			_, err := svc.Submit(testUserID, tt.nick)
			if err == nil {
				t.Fatal("Submit() expected validation error, got nil")
			}
			if apperrors.Code(err) != apperrors.ErrCodeValidation {
				t.Errorf("error code = %q, want %q", apperrors.Code(err), apperrors.ErrCodeValidation)
			}

			// No partial effects on a validation failure.
			if len(platform.calls) != 0 {
				t.Errorf("platform calls = %v, want none", platform.calls)
			}
			if store.upserts != 0 {
				t.Errorf("upserts = %d, want 0", store.upserts)
			}
			if memberCache.refreshes != 0 {
				t.Errorf("cache refreshes = %d, want 0", memberCache.refreshes)
			}
		})
	}
}

func TestVerificationService_Submit_TrimsInput(t *testing.T) {
	store := newFakeMemberStore()
	platform := newFakePlatform()
	svc := newTestService(store, platform, &fakeMemberCache{})

	applied, err := svc.Submit(testUserID, "  WFxPlayer  ")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if applied != "WFxPlayer" {
		t.Errorf("applied nickname = %q, want %q", applied, "WFxPlayer")
	}
}

func TestVerificationService_Submit_PlatformFailureAborts(t *testing.T) {
	store := newFakeMemberStore()
	platform := newFakePlatform()
	platform.failAddRole = errors.New("missing permissions")
	memberCache := &fakeMemberCache{}
	svc := newTestService(store, platform, memberCache)

	_, err := svc.Submit(testUserID, "WFxPlayer")
	if err == nil {
		t.Fatal("Submit() expected error, got nil")
	}
	if apperrors.Code(err) != apperrors.ErrCodePlatformError {
		t.Errorf("error code = %q, want %q", apperrors.Code(err), apperrors.ErrCodePlatformError)
	}

	// The nickname step already ran and is not rolled back; the
	// remaining steps must not run.
	if platform.nicknames[testUserID] != "WFxPlayer" {
		t.Errorf("display nickname = %q, want %q", platform.nicknames[testUserID], "WFxPlayer")
	}
	if store.upserts != 0 {
		t.Errorf("upserts = %d, want 0", store.upserts)
	}
	if memberCache.refreshes != 0 {
		t.Errorf("cache refreshes = %d, want 0", memberCache.refreshes)
	}
}

func TestVerificationService_Submit_StoreFailure(t *testing.T) {
	store := newFakeMemberStore()
	store.err = apperrors.New(apperrors.ErrCodeInternalError, "db down")
	platform := newFakePlatform()
	memberCache := &fakeMemberCache{}
	svc := newTestService(store, platform, memberCache)

	_, err := svc.Submit(testUserID, "WFxPlayer")
	if err == nil {
		t.Fatal("Submit() expected error, got nil")
	}
	if memberCache.refreshes != 0 {
		t.Errorf("cache refreshes = %d, want 0", memberCache.refreshes)
	}
}

func TestVerificationService_Submit_ReVerifyUpdatesInPlace(t *testing.T) {
	store := newFakeMemberStore()
	platform := newFakePlatform()
	svc := newTestService(store, platform, &fakeMemberCache{})

	if _, err := svc.Submit(testUserID, "WFxOldNick"); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if _, err := svc.Submit(testUserID, "WFxNewNick"); err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	if len(store.members) != 1 {
		t.Fatalf("member rows = %d, want 1", len(store.members))
	}
	if store.members[testUserID].GameNick != "WFxNewNick" {
		t.Errorf("game_nick = %q, want %q", store.members[testUserID].GameNick, "WFxNewNick")
	}
}

func TestVerificationService_IsVerified(t *testing.T) {
	svc := newTestService(newFakeMemberStore(), newFakePlatform(), &fakeMemberCache{})

	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{
			name:  "Holds verified role",
			roles: []string{"other", testVerifiedID},
			want:  true,
		},
		{
			name:  "Only unverified role",
			roles: []string{testUnverifiedID},
			want:  false,
		},
		{
			name:  "No roles",
			roles: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsVerified(tt.roles); got != tt.want {
				t.Errorf("IsVerified(%v) = %v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}
