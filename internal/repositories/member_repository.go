package repositories

import (
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/wfxclan/clanbot/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// UpsertMember inserts a member row keyed by Discord ID, or updates the
// game nickname of the existing row. Re-verification never creates a
// second row and never touches the original join date.
func (r *MemberRepository) UpsertMember(member *models.Member) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "discord_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"game_nick"}),
	}).Create(member)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to upsert member")
	}
	return nil
}

// GetMemberByDiscordID retrieves a member by Discord ID
func (r *MemberRepository) GetMemberByDiscordID(discordID string) (*models.Member, error) {
	var member models.Member
	result := r.db.Where("discord_id = ?", discordID).First(&member)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "member not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get member")
	}

	return &member, nil
}

// ListMembers returns all members ordered by join date
func (r *MemberRepository) ListMembers() ([]models.Member, error) {
	var members []models.Member
	result := r.db.Order("join_date ASC").Find(&members)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list members")
	}
	return members, nil
}
