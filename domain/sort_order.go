package domain

const (
	SortByName = "name"
	OrderAsc   = "asc"
	OrderDesc  = "desc"
)

type SortOrder struct {
	Sort  string `form:"sort" json:"sort"`   // 排序字段，为空时保持存储返回的顺序
	Order string `form:"order" json:"order"` // 排序方式（asc 或 desc）
}

func (s SortOrder) Descending() bool {
	return s.Order == OrderDesc
}
