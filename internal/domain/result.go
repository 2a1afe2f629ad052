package domain

// FetchResult is the outcome of a single fetch.
// It is exactly one of FetchSuccess or FetchFailure.
//
//sumtype:decl
type FetchResult[T any] interface {
	sealedFetchResult()
}

// FetchSuccess carries the fetched value.
type FetchSuccess[T any] struct {
	Value T
}

func (FetchSuccess[T]) sealedFetchResult() {}

// FetchFailure reports that the fetch did not produce data.
type FetchFailure[T any] struct{}

func (FetchFailure[T]) sealedFetchResult() {}

// Succeeded wraps v in a FetchSuccess.
func Succeeded[T any](v T) FetchResult[T] {
	return FetchSuccess[T]{Value: v}
}

// Failed returns a FetchFailure.
func Failed[T any]() FetchResult[T] {
	return FetchFailure[T]{}
}

// MatchFetch calls onSuccess or onFailure depending on the variant of r.
// A nil result is treated as a failure.
func MatchFetch[T any](r FetchResult[T], onSuccess func(T), onFailure func()) {
	if s, ok := r.(FetchSuccess[T]); ok {
		onSuccess(s.Value)
		return
	}
	onFailure()
}
