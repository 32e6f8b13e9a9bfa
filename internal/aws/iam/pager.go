package iam

import (
	"context"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// PageFunc fetches the page that starts at marker. A nil next marker ends
// the listing.
type PageFunc[T any] func(ctx context.Context, marker *string) (items []T, next *string, err error)

// Pager walks a marker-paginated listing one item at a time.
// It is single-use: once All has been ranged over, further ranges yield nothing.
type Pager[T any] struct {
	fetch    PageFunc[T]
	consumed bool
}

func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// All yields every item across all pages in page order. A fetch error is
// yielded once with the zero item and ends the sequence.
func (p *Pager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if p.consumed {
			return
		}
		p.consumed = true

		var marker *string
		for {
			items, next, err := p.fetch(ctx, marker)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if next == nil {
				return
			}
			marker = next
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	items := []T{}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// nextMarker returns the marker to resume from, or nil when the listing is done.
func nextMarker(truncated bool, marker *string) *string {
	if !truncated || aws.ToString(marker) == "" {
		return nil
	}
	return marker
}
