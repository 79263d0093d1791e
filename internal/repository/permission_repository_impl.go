package repository

import (
	"vetclinic-backend/internal/domain/entity"
	domainRepo "vetclinic-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type permissionRepository struct{}

func NewPermissionRepository() domainRepo.PermissionRepository {
	return &permissionRepository{}
}

func (r *permissionRepository) FindAll(db *gorm.DB) ([]entity.RolePermission, error) {
	var perms []entity.RolePermission
	err := db.Order("role_id ASC, resource ASC, action ASC").Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *permissionRepository) FindByRoleID(db *gorm.DB, roleID int) ([]entity.RolePermission, error) {
	var perms []entity.RolePermission
	err := db.Where("role_id = ?", roleID).Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// Upsert writes one matrix cell, keyed on (role, resource, action)
func (r *permissionRepository) Upsert(db *gorm.DB, perm *entity.RolePermission) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "resource"}, {Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"allowed"}),
	}).Create(perm).Error
}

func (r *permissionRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.RolePermission{}).Count(&count).Error
	return count, err
}

func (r *permissionRepository) CreateBatch(db *gorm.DB, perms []entity.RolePermission) error {
	return db.Create(&perms).Error
}
