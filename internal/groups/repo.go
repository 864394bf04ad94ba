package groups

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carnamarket/backend/pkg/db/models"
)

// Repository exposes carnival group persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a groups repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every carnival group ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.CarnivalGroup, error) {
	var groups []models.CarnivalGroup
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByID loads a single group by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CarnivalGroup, error) {
	var group models.CarnivalGroup
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByIDWithActiveMembers loads a group with its active members preloaded.
func (r *Repository) FindByIDWithActiveMembers(ctx context.Context, id uuid.UUID) (*models.CarnivalGroup, error) {
	var group models.CarnivalGroup
	err := r.db.WithContext(ctx).
		Preload("Members", "is_active = ?", true).
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// FindFirst returns the oldest group on record, if any.
func (r *Repository) FindFirst(ctx context.Context) (*models.CarnivalGroup, error) {
	var group models.CarnivalGroup
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create inserts a new carnival group.
func (r *Repository) Create(ctx context.Context, dto CreateGroupDTO) (*models.CarnivalGroup, error) {
	group := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// FindOrCreate inserts the group unless one with the same name exists,
// then returns the surviving row. The insert uses ON CONFLICT DO NOTHING
// so concurrent callers racing on the same name both land on the one row.
// The second return reports whether the group already existed.
func (r *Repository) FindOrCreate(ctx context.Context, dto CreateGroupDTO) (*models.CarnivalGroup, bool, error) {
	group := dto.ToModel()
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(group)
	if res.Error != nil {
		return nil, false, res.Error
	}

	existed := res.RowsAffected == 0
	if existed {
		var found models.CarnivalGroup
		if err := r.db.WithContext(ctx).Where("name = ?", dto.Name).First(&found).Error; err != nil {
			return nil, false, err
		}
		return &found, true, nil
	}
	return group, false, nil
}

// Count reports the total number of carnival groups.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.CarnivalGroup{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
