package mollie

import "context"

// SendResource sends req and hydrates the body into kind. An empty response,
// such as 204 No Content, yields the zero value and no error.
func SendResource[T Resource](ctx context.Context, connector Connector, req *Request, kind *ResourceKind[T]) (T, error) {
	var zero T

	if connector == nil {
		return zero, ErrNotBound
	}

	response, err := connector.Send(ctx, req)
	if err != nil {
		return zero, err
	}

	if response.IsEmpty() {
		return zero, nil
	}

	return HydrateResponse(connector, response, kind)
}

// SendCollection sends req and hydrates the list response into kind.
func SendCollection[T Resource](ctx context.Context, connector Connector, req *Request, kind *CollectionKind[T]) (*Collection[T], error) {
	if connector == nil {
		return nil, ErrNotBound
	}

	response, err := connector.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return HydrateCollectionFromResponse(connector, response, kind)
}

// SendEmpty sends req and discards the response body.
func SendEmpty(ctx context.Context, connector Connector, req *Request) error {
	if connector == nil {
		return ErrNotBound
	}

	_, err := connector.Send(ctx, req)

	return err
}

// GuardID checks that id carries the prefix of kind. Kinds without a prefix
// accept any non-empty id.
func GuardID[T Resource](kind *ResourceKind[T], id string) error {
	if id == "" {
		return &InvalidResourceIDError{Kind: kind.Name(), ID: id, Prefix: kind.IDPrefix()}
	}

	prefix := kind.IDPrefix()
	if prefix != "" && (len(id) < len(prefix) || id[:len(prefix)] != prefix) {
		return &InvalidResourceIDError{Kind: kind.Name(), ID: id, Prefix: prefix}
	}

	return nil
}
