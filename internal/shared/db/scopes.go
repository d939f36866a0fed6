package db

import (
	"gorm.io/gorm"
)

// statusDeleted mirrors the ticket status value used for logical deletion.
const statusDeleted = "deleted"

// NotDeleted filters out rows whose status marks them as logically deleted.
//
//	db.Model(&models.TicketModel{}).Scopes(db.NotDeleted()).Where("ticket_type = ?", name).Count(&n)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status <> ?", statusDeleted)
	}
}

// OwnedBy restricts a query to rows created by userID. An empty userID applies no filter.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			return db
		}
		return db.Where("created_by = ?", userID)
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
