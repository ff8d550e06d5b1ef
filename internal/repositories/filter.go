package repositories

import (
	"geekku_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingFilter - необязательные фильтры равенства. nil означает
// "без ограничения по полю". Заданные фильтры объединяются через AND.
type ListingFilter struct {
	Type     *string
	Style    *string
	Size     *int
	Location *string
	// Sort: latest, oldest или пусто (порядок по первичному ключу)
	Sort models.SortOrder
}

// Empty - ни одного фильтра равенства не задано
func (f ListingFilter) Empty() bool {
	return f.Type == nil && f.Style == nil && f.Size == nil && f.Location == nil
}

// ApplyListingFilter добавляет условия равенства. Size <= 0 тоже
// допустимое значение фильтра.
func ApplyListingFilter(db *gorm.DB, f ListingFilter) *gorm.DB {
	if f.Type != nil {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "type"}, Value: *f.Type})
	}
	if f.Style != nil {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "style"}, Value: *f.Style})
	}
	if f.Size != nil {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "size"}, Value: *f.Size})
	}
	if f.Location != nil {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "location"}, Value: *f.Location})
	}
	return db
}

// ApplySort: latest - created_at DESC, oldest - created_at ASC,
// иначе по первичному ключу. Ключ добавляется вторым, чтобы порядок был стабильным.
func ApplySort(db *gorm.DB, sort models.SortOrder, pk string) *gorm.DB {
	pkCol := clause.OrderByColumn{Column: clause.Column{Name: pk}}
	switch sort {
	case models.SortLatest:
		pkCol.Desc = true
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).Order(pkCol)
	case models.SortOldest:
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).Order(pkCol)
	default:
		return db.Order(pkCol)
	}
}

// Paginate - 1-based страница: offset = (page-1) * pageSize
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// PaginateZero - 0-based страница
func PaginateZero(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return Paginate(page+1, pageSize)
}

// Newest - сначала новые
func Newest(pk string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return ApplySort(db, models.SortLatest, pk)
	}
}

// findPage выполняет count и выборку страницы. Count и выборка идут
// отдельными запросами и при параллельной записи могут расходиться.
func findPage[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB, order func(*gorm.DB) *gorm.DB, page func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := db.Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	if err := db.Model(new(T)).Scopes(scope, order, page).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func noScope(db *gorm.DB) *gorm.DB { return db }
