package employee

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// Transaction runs fn against a transaction-scoped Repository. The
	// read-merge-write update sequences depend on this boundary.
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id int) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, empl *Employee) error

	FindByDesignation(ctx context.Context, designation string) ([]Employee, error)
	FindByCompany(ctx context.Context, company string) ([]Employee, error)
	FindByNameContaining(ctx context.Context, name string) ([]Employee, error)
	FindByDobAfter(ctx context.Context, date time.Time) ([]Employee, error)
	FindByDesignationAndCompany(ctx context.Context, designation, company string) ([]Employee, error)
	CountByDesignation(ctx context.Context, designation string) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	DeleteByDesignation(ctx context.Context, designation string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "emp_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls).Error
	return empls, err
}

func (r *repository) Save(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Delete(empl).Error
}

func (r *repository) FindByDesignation(ctx context.Context, designation string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("designation = ?", designation).
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByCompany(ctx context.Context, company string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("company = ?", company).
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByNameContaining(ctx context.Context, name string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByDobAfter(ctx context.Context, date time.Time) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("dob > ?", date).
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByDesignationAndCompany(ctx context.Context, designation, company string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("designation = ?", designation).
		Where("company = ?", company).
		Find(&empls).Error
	return empls, err
}

func (r *repository) CountByDesignation(ctx context.Context, designation string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("designation = ?", designation).
		Count(&count).Error
	return count, err
}

func (r *repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DeleteByDesignation(ctx context.Context, designation string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("designation = ?", designation).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}
