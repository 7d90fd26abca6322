package model

// Page represents a generic paginated response
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
}

// NewPage creates a new Page instance with calculated values
func NewPage[T any](content []T, number int, size int, totalElements int64) *Page[T] {
	totalPages := 0
	if totalElements > 0 && size > 0 {
		totalPages = int((totalElements-1)/int64(size) + 1)
	}
	if content == nil {
		content = make([]T, 0)
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}

// Paginate slices an already filtered and sorted list into the requested page.
// A negative page is treated as the first one and a non positive size returns everything.
func Paginate[T any](items []T, number int, size int) *Page[T] {
	total := int64(len(items))
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		return NewPage(items, 0, len(items), total)
	}

	// compare before multiplying, number * size may overflow
	if len(items) == 0 || number > (len(items)-1)/size {
		return NewPage([]T{}, number, size, total)
	}
	start := number * size
	end := min(start+size, len(items))
	return NewPage(items[start:end], number, size, total)
}
