// Package tx describes the outcome of applying a mutation batch.
package tx

// Response contains the result of a batch application.
type Response struct {
	// Revision is the main revision the batch was committed at, or the current
	// revision for an empty batch.
	Revision int64
	// Results contains the responses for each operation, in batch order.
	Results []RequestResponse
}
