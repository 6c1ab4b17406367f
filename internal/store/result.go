package store

// MutationResult is the raw outcome of an update, shaped like the document
// store's own update acknowledgement. Callers re-fetch to see new values.
type MutationResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}
