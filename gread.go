// Package gread turns a server-paginated image gallery into a
// continuously aggregating reader. It discovers how many virtual pages
// a gallery has, fetches each page's HTML, resolves every thumbnail
// link to its full-size image source with bounded retry, and feeds the
// results to a view in strict page-then-item order while speculatively
// prefetching the next page.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, rod/); orchestration lives in engine/.
package gread
