package domain

import "time"

// BranchType — тип филиала химчистки.
type BranchType string

const (
	BranchMain      BranchType = "main"
	BranchSatellite BranchType = "satellite"
)

// Valid — известный ли тип филиала.
func (t BranchType) Valid() bool {
	return t == BranchMain || t == BranchSatellite
}

// Branch — справочная запись филиала. Владелец данных — хранилище,
// кэш держит read-only копию.
type Branch struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         BranchType `json:"branch_type"`
	Address      string     `json:"address"`
	ContactPhone string     `json:"contact_phone"`

	// SortingWindowHours — сколько часов филиалу нужно на сортировку после поступления заказа.
	// nil — не настроено (используется значение по умолчанию).
	SortingWindowHours *float64 `json:"sorting_window_hours,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Clone — глубокая копия, чтобы изменения у вызывающего не попадали в кэш.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return nil
	}
	cloned := *b
	if b.SortingWindowHours != nil {
		hours := *b.SortingWindowHours
		cloned.SortingWindowHours = &hours
	}
	return &cloned
}
