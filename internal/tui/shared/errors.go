package shared

import (
	"fmt"
	"strings"

	"github.com/joe/dirmonitor/pkg/errors"
)

// ErrorSymbol returns the cross mark shown in front of errors
func ErrorSymbol() string {
	return "✗"
}

// RenderEnrichedError renders an error with its actionable suggestions.
// The error is enriched for path when it is not already actionable. maxWidth
// truncates the message when positive.
func RenderEnrichedError(err error, path string, maxWidth int) string {
	if err == nil {
		return ""
	}

	enriched := errors.NewEnricher().Enrich(err, path)

	errMsg := enriched.Error()
	if maxWidth > 3 && len(errMsg) > maxWidth {
		errMsg = errMsg[:maxWidth-3] + "..."
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "%s %s\n", RenderError(ErrorSymbol()), RenderError(errMsg))

	if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintf(&builder, "%s\n", RenderDim("Try these solutions:"))
		fmt.Fprintf(&builder, "%s\n", suggestions)
	}

	return builder.String()
}
