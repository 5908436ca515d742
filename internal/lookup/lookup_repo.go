package lookup

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindDepartments(ctx context.Context) ([]Option, error)
	FindPositions(ctx context.Context) ([]PositionOption, error)
	FindBanks(ctx context.Context) ([]Option, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindDepartments(ctx context.Context) ([]Option, error) {
	var opts []Option
	err := r.db.WithContext(ctx).
		Table("departamentos").
		Select("id AS value, nome AS text").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) FindPositions(ctx context.Context) ([]PositionOption, error) {
	var opts []PositionOption
	err := r.db.WithContext(ctx).
		Table("cargos").
		Select("id AS value, nome AS text, departamento_id AS department_id").
		Scan(&opts).Error
	return opts, err
}

func (r *repository) FindBanks(ctx context.Context) ([]Option, error) {
	var opts []Option
	err := r.db.WithContext(ctx).
		Table("bancos").
		Select("id AS value, nome AS text").
		Scan(&opts).Error
	return opts, err
}
