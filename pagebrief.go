// Package pagebrief turns web pages into LLM-generated prose. It fetches a
// seed page, optionally asks the LLM to pick relevant sub-pages, aggregates
// the extracted content under a character budget, and generates either a
// single-page summary or a multi-page company brochure in markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/).
package pagebrief
