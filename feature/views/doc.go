// Package views declares the page route table and its HTML views.
//
// The table has a single home page at "/" and three pages per dataset:
// "/preview/:filename", "/analyze/:filename" and "/visualize/:filename". The
// dataset pages are lazy: their templates are parsed the first time a request
// reaches them. Each page lists the backend endpoints it calls for its dataset.
package views
