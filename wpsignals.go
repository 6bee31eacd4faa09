// Package wpsignals inspects a rendered web page and reports the
// content-management-system signals it carries: WordPress theme identity,
// content-type classification, script loading metadata, embed block usage,
// and Interactivity API usage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, http/).
package wpsignals
