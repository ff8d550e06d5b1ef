package dto

import (
	"strings"
	"time"

	"geekku_backend/internal/models"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// EstateDto - форма estateWrite и ответ детального просмотра
type EstateDto struct {
	EstateNum       int       `form:"-" json:"estateNum"`
	CompanyID       string    `form:"companyId" json:"companyId" validate:"required"`
	Type            string    `form:"type" json:"type" validate:"required,max=20"`
	RentType        string    `form:"rentType" json:"rentType" validate:"max=20"`
	Title           string    `form:"title" json:"title" validate:"required,max=200"`
	JibunAddress    string    `form:"jibunAddress" json:"jibunAddress"`
	Address1        string    `form:"address1" json:"address1"`
	Address2        string    `form:"address2" json:"address2"`
	Location        string    `form:"location" json:"location" validate:"max=50"`
	Size1           int       `form:"size1" json:"size1"`
	Size2           int       `form:"size2" json:"size2"`
	RoomCount       int       `form:"roomCount" json:"roomCount" validate:"min=0"`
	BathCount       int       `form:"bathCount" json:"bathCount" validate:"min=0"`
	Floor           int       `form:"floor" json:"floor"`
	TotalFloor      int       `form:"totalFloor" json:"totalFloor"`
	DepositPrice    int       `form:"depositPrice" json:"depositPrice" validate:"min=0"`
	MonthlyPrice    int       `form:"monthlyPrice" json:"monthlyPrice" validate:"min=0"`
	JeonsePrice     int       `form:"jeonsePrice" json:"jeonsePrice" validate:"min=0"`
	BuyPrice        int       `form:"buyPrice" json:"buyPrice" validate:"min=0"`
	ManagementPrice int       `form:"managementPrice" json:"managementPrice" validate:"min=0"`
	AvailableDate   string    `form:"availableDate" json:"availableDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Content         string    `form:"content" json:"content"`
	ImageNums       string    `form:"-" json:"imageNums"`
	CompanyName     string    `form:"-" json:"companyName,omitempty"`
	CompanyPhone    string    `form:"-" json:"companyPhone,omitempty"`
	CreatedAt       time.Time `form:"-" json:"createdAt"`
}

func (d *EstateDto) ToEntity() *models.Estate {
	e := &models.Estate{
		EstateNum:       d.EstateNum,
		CompanyID:       d.CompanyID,
		Type:            d.Type,
		RentType:        d.RentType,
		Title:           d.Title,
		JibunAddress:    d.JibunAddress,
		Address1:        d.Address1,
		Address2:        d.Address2,
		Location:        d.Location,
		Size1:           d.Size1,
		Size2:           d.Size2,
		RoomCount:       d.RoomCount,
		BathCount:       d.BathCount,
		Floor:           d.Floor,
		TotalFloor:      d.TotalFloor,
		DepositPrice:    d.DepositPrice,
		MonthlyPrice:    d.MonthlyPrice,
		JeonsePrice:     d.JeonsePrice,
		BuyPrice:        d.BuyPrice,
		ManagementPrice: d.ManagementPrice,
		Content:         d.Content,
		ImageNums:       d.ImageNums,
	}
	if d.AvailableDate != "" {
		if t, err := time.Parse(dateLayout, d.AvailableDate); err == nil {
			date := datatypes.Date(t)
			e.AvailableDate = &date
		}
	}
	return e
}

func FromEstate(e *models.Estate) EstateDto {
	d := EstateDto{
		EstateNum:       e.EstateNum,
		CompanyID:       e.CompanyID,
		Type:            e.Type,
		RentType:        e.RentType,
		Title:           e.Title,
		JibunAddress:    e.JibunAddress,
		Address1:        e.Address1,
		Address2:        e.Address2,
		Location:        e.Location,
		Size1:           e.Size1,
		Size2:           e.Size2,
		RoomCount:       e.RoomCount,
		BathCount:       e.BathCount,
		Floor:           e.Floor,
		TotalFloor:      e.TotalFloor,
		DepositPrice:    e.DepositPrice,
		MonthlyPrice:    e.MonthlyPrice,
		JeonsePrice:     e.JeonsePrice,
		BuyPrice:        e.BuyPrice,
		ManagementPrice: e.ManagementPrice,
		Content:         e.Content,
		ImageNums:       e.ImageNums,
		CreatedAt:       e.CreatedAt,
	}
	if e.AvailableDate != nil {
		d.AvailableDate = time.Time(*e.AvailableDate).Format(dateLayout)
	}
	return d
}

// WithCompany дополняет DTO контактами компании
func (d EstateDto) WithCompany(c *models.Company) EstateDto {
	if c != nil {
		d.CompanyName = c.CompanyName
		d.CompanyPhone = c.Phone
	}
	return d
}

// ImageNames - имена файлов из ImageNums
func ImageNames(imageNums string) []string {
	if imageNums == "" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(imageNums, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

type EstateDetailRequest struct {
	EstateNum string `json:"estateNum" validate:"required"`
	UserID    string `json:"userId"`
}

type EstateDetailResponse struct {
	Estate   EstateDto `json:"estate"`
	Bookmark *bool     `json:"bookmark,omitempty"`
}

type EstateListResponse struct {
	EstateList []EstateDto `json:"estateList"`
	PageInfo   PageInfo    `json:"pageInfo"`
}
