package domain

// StatusSuccess is the only fetch status that carries usable items.
// Anything else means "no data this cycle" for the source.
const StatusSuccess = "success"

// FetchResult is one upstream API response, already normalized.
type FetchResult struct {
	Status string
	Items  []FetchItem
}

// FetchItem is one candidate item from a fetch. ExternalID is nil when the
// payload had no id field at all; such items are dropped during novel-set
// computation rather than treated as errors.
type FetchItem struct {
	ExternalID *string
	Title      string
	URL        string
}
