package supplier

import "time"

// Supplier is a purchasing contact maintained by the operations team. It is
// local metadata only; the ERP has no knowledge of it.
type Supplier struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Active    bool      `gorm:"column:active;not null" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}
