package checks

import (
	"fmt"

	"data-studio/feature/datasets/models"

	"gorm.io/gorm"
)

// SchemaReport compares the metadata table with its model.
type SchemaReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
}

// CheckSchema verifies that the datasets table has every column of the model.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&models.Dataset{}); err != nil {
		return nil, fmt.Errorf("failed to parse dataset model: %w", err)
	}

	report := &SchemaReport{Table: stmt.Schema.Table, MissingColumns: []string{}}
	migrator := db.Migrator()
	if !migrator.HasTable(&models.Dataset{}) {
		return report, nil
	}
	report.Exists = true

	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}
		if !migrator.HasColumn(&models.Dataset{}, field.DBName) {
			report.MissingColumns = append(report.MissingColumns, field.DBName)
		}
	}
	report.Matched = len(report.MissingColumns) == 0
	return report, nil
}
