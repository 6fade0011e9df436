package mollie

import (
	"context"
	"fmt"
	"iter"

	"github.com/mitchellh/mapstructure"
)

const (
	linkNext     = "next"
	linkPrevious = "previous"
)

// Collection is one page of resources together with the pagination links the
// API returned for it.
type Collection[T Resource] struct {
	// Items holds the hydrated resources in response order.
	Items []T `json:"items" yaml:"items"`
	// Count is the number of items the API reported for this page.
	Count int `json:"count" yaml:"count"`
	// Links holds at least the next and previous relations when present.
	Links Links `json:"_links" yaml:"_links"`

	kind      *CollectionKind[T]
	connector Connector
	response  *Response
}

// HydrateCollection hydrates every element of items into elem and wraps them
// in a collection. When kind is nil the collection kind registered for elem
// ("<element name>Collection") is used.
func HydrateCollection[T Resource](
	connector Connector,
	items []interface{},
	elem *ResourceKind[T],
	response *Response,
	links Links,
	kind *CollectionKind[T],
) (*Collection[T], error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: collection without element kind", ErrUnrecognizedType)
	}

	if kind == nil {
		registered, err := CollectionKindFor(elem)
		if err != nil {
			return nil, err
		}

		kind = registered
	}

	collection := &Collection[T]{
		Items:     make([]T, 0, len(items)),
		Count:     len(items),
		Links:     links,
		kind:      kind,
		connector: connector,
		response:  response,
	}

	for _, item := range items {
		resource, err := elem.hydrate(connector, item, response)
		if err != nil {
			return nil, err
		}

		collection.Items = append(collection.Items, resource)
	}

	return collection, nil
}

// HydrateCollectionFromResponse hydrates a list response: the items under
// _embedded.<key>, the count and the _links object.
func HydrateCollectionFromResponse[T Resource](
	connector Connector,
	response *Response,
	kind *CollectionKind[T],
) (*Collection[T], error) {
	if response == nil {
		return nil, fmt.Errorf("%w: response is required", ErrInvalidArgument)
	}

	if kind == nil {
		return nil, fmt.Errorf("%w: collection kind is required", ErrUnrecognizedType)
	}

	body, err := response.JSON()
	if err != nil {
		return nil, err
	}

	items, err := listItems(body, kind.Key())
	if err != nil {
		return nil, fmt.Errorf("hydrating %s: %w", kind.Name(), err)
	}

	links, err := decodeLinks(body["_links"])
	if err != nil {
		return nil, fmt.Errorf("hydrating %s links: %w", kind.Name(), err)
	}

	collection, err := HydrateCollection(connector, items, kind.Element(), response, links, kind)
	if err != nil {
		return nil, err
	}

	if count, ok := body["count"].(float64); ok {
		collection.Count = int(count)
	}

	return collection, nil
}

func listItems(body map[string]interface{}, key string) ([]interface{}, error) {
	raw, ok := body[embeddedKey]
	if !ok || raw == nil {
		return nil, nil
	}

	embedded, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, not an object", ErrInvalidArgument, embeddedKey, raw)
	}

	switch list := embedded[key].(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return list, nil
	default:
		return nil, fmt.Errorf("%w: %s.%s is %T, not an array", ErrInvalidArgument, embeddedKey, key, list)
	}
}

func decodeLinks(raw interface{}) (Links, error) {
	if raw == nil {
		return Links{}, nil
	}

	links := Links{}

	err := mapstructure.Decode(raw, &links)
	if err != nil {
		return nil, fmt.Errorf("decoding links: %w", err)
	}

	return links, nil
}

// Len returns the number of hydrated items.
func (c *Collection[T]) Len() int {
	return len(c.Items)
}

// Kind returns the collection kind.
func (c *Collection[T]) Kind() *CollectionKind[T] {
	return c.kind
}

// Response returns the response the page was hydrated from.
func (c *Collection[T]) Response() *Response {
	return c.response
}

// HasNext reports whether the API returned a next link.
func (c *Collection[T]) HasNext() bool {
	return c.Links.Has(linkNext)
}

// HasPrevious reports whether the API returned a previous link.
func (c *Collection[T]) HasPrevious() bool {
	return c.Links.Has(linkPrevious)
}

// Next fetches the page behind the next link. Without a link it returns
// (nil, nil) and performs no request.
func (c *Collection[T]) Next(ctx context.Context) (*Collection[T], error) {
	return c.follow(ctx, linkNext)
}

// Previous fetches the page behind the previous link. Without a link it
// returns (nil, nil) and performs no request.
func (c *Collection[T]) Previous(ctx context.Context) (*Collection[T], error) {
	return c.follow(ctx, linkPrevious)
}

func (c *Collection[T]) follow(ctx context.Context, rel string) (*Collection[T], error) {
	if !c.Links.Has(rel) {
		return nil, nil
	}

	if c.connector == nil {
		return nil, ErrNotBound
	}

	response, err := c.connector.Send(ctx, NewDynamicGetRequest(c.Links.Href(rel), c.kind))
	if err != nil {
		return nil, err
	}

	return HydrateCollectionFromResponse(c.connector, response, c.kind)
}

// AutoIterator returns a lazy walk over this page and every page reachable
// through next links, or previous links when backwards is set.
func (c *Collection[T]) AutoIterator(backwards bool) *LazyCollection[T] {
	return NewLazyCollection(func(context.Context) (*Collection[T], error) {
		return c, nil
	}, backwards)
}

type iteratorState int

const (
	awaitingFirstPage iteratorState = iota
	hasPage
	exhausted
)

// LazyCollection walks items across pages, fetching a page only when the
// items of the previous one have been consumed. Direction is fixed when it
// is created; a LazyCollection cannot be restarted.
//
//	it := payments.Iterator(ctx, nil, false)
//	for it.Next(ctx) {
//		payment := it.Item()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type LazyCollection[T Resource] struct {
	first     func(ctx context.Context) (*Collection[T], error)
	backwards bool

	state   iteratorState
	page    *Collection[T]
	index   int
	current T
	err     error
}

// NewLazyCollection creates a walk whose first page is produced by first on
// the first call to Next.
func NewLazyCollection[T Resource](first func(ctx context.Context) (*Collection[T], error), backwards bool) *LazyCollection[T] {
	return &LazyCollection[T]{first: first, backwards: backwards}
}

// Backwards reports whether the walk follows previous links.
func (l *LazyCollection[T]) Backwards() bool {
	return l.backwards
}

// Next advances to the next item, fetching the following page if needed. It
// returns false once the chain is exhausted or a fetch failed; see Err.
func (l *LazyCollection[T]) Next(ctx context.Context) bool {
	for {
		switch l.state {
		case exhausted:
			return false

		case awaitingFirstPage:
			if l.first == nil {
				l.fail(fmt.Errorf("%w: iterator has no first page", ErrInvalidArgument))

				return false
			}

			page, err := l.first(ctx)
			if err != nil {
				l.fail(err)

				return false
			}

			l.enter(page)

		case hasPage:
			if l.index < len(l.page.Items) {
				l.current = l.page.Items[l.index]
				l.index++

				return true
			}

			l.advance(ctx)
		}
	}
}

func (l *LazyCollection[T]) enter(page *Collection[T]) {
	if page == nil {
		l.state = exhausted

		return
	}

	l.page = page
	l.index = 0
	l.state = hasPage
}

func (l *LazyCollection[T]) advance(ctx context.Context) {
	var (
		page *Collection[T]
		err  error
	)

	if l.backwards {
		page, err = l.page.Previous(ctx)
	} else {
		page, err = l.page.Next(ctx)
	}

	if err != nil {
		l.fail(err)

		return
	}

	l.enter(page)
}

func (l *LazyCollection[T]) fail(err error) {
	var zero T

	l.err = err
	l.current = zero
	l.page = nil
	l.state = exhausted
}

// Item returns the item Next advanced to.
func (l *LazyCollection[T]) Item() T {
	return l.current
}

// Err returns the error that ended the walk, if any.
func (l *LazyCollection[T]) Err() error {
	return l.err
}

// All returns the remaining items as a sequence. A failed page fetch is
// yielded once as the final element.
func (l *LazyCollection[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for l.Next(ctx) {
			if !yield(l.current, nil) {
				return
			}
		}

		if l.err != nil {
			var zero T

			yield(zero, l.err)
		}
	}
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (l *LazyCollection[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for l.Next(ctx) {
		err := fn(l.current)
		if err != nil {
			return err
		}
	}

	return l.err
}

// Collect drains the walk into a slice.
func (l *LazyCollection[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T

	for l.Next(ctx) {
		items = append(items, l.current)
	}

	return items, l.err
}
