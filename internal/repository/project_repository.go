package repository

import (
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(spec *entity.ProjectSpec) error {
	return r.db.Create(spec).Error
}

func (r *ProjectRepository) Update(spec *entity.ProjectSpec) error {
	return r.db.Save(spec).Error
}

// GetByID loads a project with its custom lines in serial order.
func (r *ProjectRepository) GetByID(id string) (*entity.ProjectSpec, error) {
	var spec entity.ProjectSpec
	err := r.db.Preload("CustomLines", func(db *gorm.DB) *gorm.DB {
		return db.Order("serial ASC")
	}).First(&spec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ProjectListParams struct {
	Customer string
	Phase    string
	Page     int
	Size     int
}

func (r *ProjectRepository) List(params ProjectListParams) ([]entity.ProjectSpec, int64, error) {
	query := r.db.Model(&entity.ProjectSpec{})
	if params.Customer != "" {
		query = query.Where("customer ILIKE ?", "%"+params.Customer+"%")
	}
	if params.Phase != "" {
		query = query.Where("phase = ?", params.Phase)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Page > 0 && params.Size > 0 {
		query = query.Offset((params.Page - 1) * params.Size).Limit(params.Size)
	}

	var specs []entity.ProjectSpec
	err := query.Order("created_at DESC").Find(&specs).Error
	return specs, total, err
}

// ListAll returns every project with custom lines loaded, the snapshot the
// aggregator runs over.
func (r *ProjectRepository) ListAll() ([]entity.ProjectSpec, error) {
	var specs []entity.ProjectSpec
	err := r.db.Preload("CustomLines", func(db *gorm.DB) *gorm.DB {
		return db.Order("serial ASC")
	}).Order("created_at ASC").Find(&specs).Error
	return specs, err
}

// Delete removes the project and its custom lines. Historical stock events
// are untouched.
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&entity.CustomLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ProjectSpec{}, "id = ?", id).Error
	})
}

// ReplaceCustomLines swaps the caller-supplied line list of a Custom project
// in one transaction.
func (r *ProjectRepository) ReplaceCustomLines(projectID string, lines []entity.CustomLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&entity.CustomLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}
