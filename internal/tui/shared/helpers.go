package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/joe/dirmonitor/internal/dirscan"
)

// ============================================================================
// Formatting Functions
// Shared by the line output and the browser for consistent display
// ============================================================================

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MB")
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatTime formats a modification time for listings
func FormatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}

// EntryName returns the display name of an entry, with a trailing slash on directories
func EntryName(entry dirscan.Entry) string {
	if entry.IsDir {
		return entry.Name + "/"
	}

	return entry.Name
}

// RenderEntryLine renders one entry as "size  modified  name", styled by type
func RenderEntryLine(entry dirscan.Entry) string {
	size := "-"
	if !entry.IsDir {
		size = FormatBytes(entry.Size)
	}

	name := FileEntryStyle().Render(EntryName(entry))
	if entry.IsDir {
		name = DirEntryStyle().Render(EntryName(entry))
	}

	return strings.Join([]string{
		SizeStyle().Render(size),
		RenderDim(FormatTime(entry.ModTime)),
		name,
	}, "  ")
}

// TruncatePath shortens a path to maxWidth characters, keeping its end
func TruncatePath(path string, maxWidth int) string {
	const ellipsis = "..."

	if maxWidth <= len(ellipsis) || len(path) <= maxWidth {
		return path
	}

	return ellipsis + path[len(path)-(maxWidth-len(ellipsis)):]
}
