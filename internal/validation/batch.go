package validation

import "context"

// ItemValidator validates one item of a batch.
type ItemValidator[T any] func(ctx context.Context, item T) Result

// ProgressFunc is called after each item with the number of items
// processed so far and the batch total.
type ProgressFunc func(done, total int)

// ValidateBatch runs the validator over each item in order, invoking
// progress after every item. Items are processed strictly sequentially;
// any parallelism is the caller's concern. Cancellation is honored
// between items, returning the results accumulated so far along with
// the context's error.
func ValidateBatch[T any](ctx context.Context, items []T, validate ItemValidator[T], progress ProgressFunc) ([]Result, error) {
	results := make([]Result, 0, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, validate(ctx, item))
		if progress != nil {
			progress(i+1, len(items))
		}
	}
	return results, nil
}
