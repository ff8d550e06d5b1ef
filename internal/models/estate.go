package models

import (
	"time"

	"gorm.io/datatypes"
)

// Estate - объявление о недвижимости компании
type Estate struct {
	EstateNum       int    `gorm:"primaryKey;autoIncrement"`
	CompanyID       string `gorm:"type:varchar(36);not null;index"`
	Type            string `gorm:"size:20;index"` // apartment, villa, officetel, ...
	RentType        string `gorm:"size:20"`       // jeonse, monthly, buy
	Title           string `gorm:"size:200"`
	JibunAddress    string
	Address1        string
	Address2        string
	Location        string `gorm:"size:50;index"`
	Size1           int
	Size2           int
	RoomCount       int
	BathCount       int
	Floor           int
	TotalFloor      int
	DepositPrice    int
	MonthlyPrice    int
	JeonsePrice     int
	BuyPrice        int
	ManagementPrice int
	AvailableDate   *datatypes.Date
	Content         string `gorm:"type:text"`
	ImageNums       string // имена файлов через запятую
	CreatedAt       time.Time `gorm:"index"`

	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
