// Package report renders computed struct layouts for people and
// machines: styled or plain text for terminals, Markdown for docs, JSON
// and CSV for tooling.
//
// Rendering decisions live here, not in the layout engine: padding
// thresholds, highlighting, and which structs to include are all
// presentation concerns.
package report
