package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the organization-wide singleton row. It is written by the admin
// configuration tool; this service only ever reads it.
type Settings struct {
	ID                    int64           `gorm:"primaryKey"`
	LotteryPeriodMonths   int             `gorm:"not null;default:2"`
	LotteryPeriodStartDay int             `gorm:"not null;default:1"`
	LotteryPeriodEndDay   int             `gorm:"not null;default:10"`
	MaxAnnualLeavePoints  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Level1Points          decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Level2Points          decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Level3Points          decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CurrentFiscalYear     int             `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Settings) TableName() string { return "settings" }
