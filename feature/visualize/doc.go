// Package visualize turns dataset columns into plotly figures.
package visualize
