package dbmodels

import (
	"attachment-hub-backend/models"
	"time"
)

type AuditLog struct {
	BaseModel
	Username  string           `gorm:"type:varchar(150);index"`
	Action    models.LogAction `gorm:"type:varchar(50)"`
	Details   string
	Timestamp time.Time `gorm:"autoCreateTime"`
}
