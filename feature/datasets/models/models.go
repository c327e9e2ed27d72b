package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dataset is the metadata row kept for every stored CSV.
type Dataset struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Filename  string    `gorm:"column:filename;uniqueIndex;size:255;not null" json:"filename"`
	ObjectKey string    `gorm:"column:object_key;size:512;not null" json:"object_key"`
	Size      int64     `gorm:"column:size" json:"size"`
	Rows      int       `gorm:"column:rows" json:"rows"`
	Columns   int       `gorm:"column:columns" json:"columns"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Dataset) TableName() string {
	return "datasets"
}

// BeforeCreate assigns a UUID when none is set.
func (d *Dataset) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Info describes a stored dataset. Rows and Columns are zero when no metadata
// row exists.
type Info struct {
	Filename     string    `json:"filename"`
	ObjectKey    string    `json:"object_key"`
	Size         int64     `json:"size"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	LastModified time.Time `json:"last_modified"`
}

// Preview is the first rows of a dataset with its schema.
type Preview struct {
	Filename string            `json:"filename"`
	Rows     int               `json:"rows"`
	Columns  []string          `json:"columns"`
	DTypes   map[string]string `json:"dtypes"`
	Missing  map[string]int    `json:"missing"`
	Shown    int               `json:"shown"`
	Data     []map[string]any  `json:"data"`
}
