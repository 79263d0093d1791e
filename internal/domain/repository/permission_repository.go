package repository

import (
	"vetclinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindAll(db *gorm.DB) ([]entity.RolePermission, error)
	FindByRoleID(db *gorm.DB, roleID int) ([]entity.RolePermission, error)
	Upsert(db *gorm.DB, perm *entity.RolePermission) error
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, perms []entity.RolePermission) error
}
