package bloom

import (
	"fmt"
	"strings"
)

// Screenshot queues a labeled screenshot request. The runner only records
// labels; the viewer driving it captures its rendered frame for each label
// returned by PendingScreenshots.
func (r *Runner) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// PendingScreenshots returns the queued labels and empties the queue. Call it
// once per frame, after drawing.
func (r *Runner) PendingScreenshots() []string {
	if len(r.screenshotQueue) == 0 {
		return nil
	}
	labels := r.screenshotQueue
	r.screenshotQueue = nil
	return labels
}

// ScreenshotFilename returns the PNG file name for a screenshot taken at
// frame, with label made safe for file systems.
func ScreenshotFilename(frame uint64, label string) string {
	return fmt.Sprintf("%06d_%s.png", frame, sanitizeLabel(label))
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
