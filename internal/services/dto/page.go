package dto

// DefaultPageSize - размер страницы для всех списков
const DefaultPageSize = 10

// pageGroupSize - сколько номеров страниц показывает пагинатор
const pageGroupSize = 10

// PageInfo - метаданные 1-based пагинации (списки estate, sample, community filter)
type PageInfo struct {
	CurPage    int   `json:"curPage"`
	AllPage    int   `json:"allPage"`
	StartPage  int   `json:"startPage"`
	EndPage    int   `json:"endPage"`
	TotalCount int64 `json:"totalCount"`
}

// NewPageInfo считает число страниц и окно пагинатора для текущей страницы
func NewPageInfo(curPage, pageSize int, total int64) PageInfo {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	allPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	startPage := (curPage-1)/pageGroupSize*pageGroupSize + 1
	endPage := startPage + pageGroupSize - 1
	if endPage > allPage {
		endPage = allPage
	}
	return PageInfo{
		CurPage:    curPage,
		AllPage:    allPage,
		StartPage:  startPage,
		EndPage:    endPage,
		TotalCount: total,
	}
}

// Page - 0-based страница (answers, community list, interior requests).
// Страница за пределами данных - пустой Content, не ошибка.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

func NewPage[T any](content []T, number, size int, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           number,
		Size:             size,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// MapSlice конвертирует срез сущностей в срез DTO
func MapSlice[E any, D any](items []E, fn func(*E) D) []D {
	out := make([]D, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
