package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// Errors from the core pass through these helpers untouched so callers can
// match them with errors.As and errors.Is.

// getOne sends req and hydrates a single resource.
func getOne[T mollie.Resource](
	ctx context.Context,
	connector mollie.Connector,
	req *mollie.Request,
	kind *mollie.ResourceKind[T],
) (T, error) {
	return mollie.SendResource(ctx, connector, req, kind)
}

// getPage sends req and hydrates one page of a list.
func getPage[T mollie.Resource](
	ctx context.Context,
	connector mollie.Connector,
	req *mollie.Request,
	kind *mollie.CollectionKind[T],
) (*mollie.Collection[T], error) {
	return mollie.SendCollection(ctx, connector, req, kind)
}

// send sends req and ignores the body.
func send(ctx context.Context, connector mollie.Connector, req *mollie.Request) error {
	return mollie.SendEmpty(ctx, connector, req)
}

// iterate returns a lazy iterator whose first page is fetched by build on
// the first call to Next.
func iterate[T mollie.Resource](
	connector mollie.Connector,
	build func() *mollie.Request,
	kind *mollie.CollectionKind[T],
	backwards bool,
) *mollie.LazyCollection[T] {
	return mollie.NewLazyCollection(func(ctx context.Context) (*mollie.Collection[T], error) {
		return getPage(ctx, connector, build(), kind)
	}, backwards)
}

func query(params *mollie.QueryParams) url.Values {
	return params.ToValues()
}
