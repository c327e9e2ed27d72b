// Package ui is the UI component library registered first at bootstrap.
//
// It resolves the configured locale against the built-in message catalogs
// (zh-CN, en) with golang.org/x/text/language and exposes a translator that
// every view receives when it renders.
package ui
