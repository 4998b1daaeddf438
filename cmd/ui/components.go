package ui

import (
	"fmt"
	"strings"
)

// ConversionOutcome represents the result of converting one base icon
type ConversionOutcome int

const (
	OutcomeConverted ConversionOutcome = iota
	OutcomeFailed
	OutcomeSkipped
)

// FormatIconOutcome formats a base icon name with the appropriate outcome icon and color
func FormatIconOutcome(outcome ConversionOutcome, name string) string {
	switch outcome {
	case OutcomeConverted:
		return fmt.Sprintf("  %s  %s", ConvertedStyle.Render(IconCheck), ConvertedStyle.Render(name))
	case OutcomeFailed:
		return fmt.Sprintf("  %s  %s", FailedStyle.Render(IconFailed), FailedStyle.Render(name))
	case OutcomeSkipped:
		return fmt.Sprintf("  %s  %s", SkippedStyle.Render(IconSkipped), SkippedStyle.Render(name))
	default:
		return name
	}
}

// FormatConverted formats a successfully converted icon
func FormatConverted(name string) string {
	return FormatIconOutcome(OutcomeConverted, name)
}

// FormatFailed formats a failed icon
func FormatFailed(name string) string {
	return FormatIconOutcome(OutcomeFailed, name)
}

// FormatSkipped formats an icon left out of the build set
func FormatSkipped(name string) string {
	return FormatIconOutcome(OutcomeSkipped, name)
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheck), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// FolderInfo formats an input folder with its output destination
func FolderInfo(inputDir, outputDir string) string {
	return fmt.Sprintf("%s %s %s %s", Cyan(IconFolder), Blue(inputDir), Cyan(IconArrow), Blue(outputDir))
}

// PlanEntryInfo describes one source line of a render plan
type PlanEntryInfo struct {
	Source string
	Sizes  string
}

// PlanInfo describes a resolved render plan for display
type PlanInfo struct {
	Base    string
	Entries []PlanEntryInfo
}

// FormatPlanDetailed formats a render plan with every source in a box
func FormatPlanDetailed(plan PlanInfo) string {
	var content strings.Builder

	// Base icon line
	content.WriteString(fmt.Sprintf("%s %s\n", Yellow(IconIcon), Yellow(plan.Base)))

	// One line per source with the sizes it renders
	for _, entry := range plan.Entries {
		content.WriteString(fmt.Sprintf("  %s %s %s\n",
			Cyan(IconArrow),
			Cyan(entry.Source),
			SizeListStyle.Render("["+entry.Sizes+"]")))
	}

	return PlanBox(strings.TrimRight(content.String(), "\n"))
}

// FormatSynced formats a pushed repository with its commit message
func FormatSynced(dir, message string) string {
	return fmt.Sprintf("  %s  %s %s", SyncedStyle.Render(IconCommit), SyncedStyle.Render(dir), Cyan(message))
}

// FormatSyncClean formats a repository with nothing to commit
func FormatSyncClean(dir string) string {
	return fmt.Sprintf("  %s  %s %s", SkippedStyle.Render(IconCheck), SkippedStyle.Render(dir), SkippedStyle.Render("nothing to commit"))
}

// FormatSyncFailed formats a repository whose sync failed
func FormatSyncFailed(dir string, err error) string {
	return fmt.Sprintf("  %s  %s %s", FailedStyle.Render(IconFailed), FailedStyle.Render(dir), Red(err.Error()))
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}

// InfoMessage formats an info message in blue
func InfoMessage(message string) string {
	return Blue(message)
}
