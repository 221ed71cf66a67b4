// Package siteqa answers a fixed list of questions about a web site.
// It fetches the site's front page, extracts its main text and a few
// metadata facts, and hands that content to a question-answering service
// once per question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package siteqa
