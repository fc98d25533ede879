package nlp

import "context"

// DateExtractor finds the first date-like span in free text. The dialog
// platform sometimes hands over raw utterance fragments instead of resolved
// date entities; the extractor recovers a usable date string from those.
type DateExtractor interface {
	// ExtractDate returns the first recognized date span and true, or
	// ("", false) when the text contains none.
	ExtractDate(ctx context.Context, text string) (string, bool)
}
