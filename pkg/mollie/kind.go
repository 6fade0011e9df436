package mollie

import (
	"fmt"
	"sync"
)

// Kind describes what a payload hydrates into: a single resource
// (ResourceKind) or a collection of resources (CollectionKind). The set of
// kinds is closed; embedded-resource maps are checked against it.
type Kind interface {
	Name() string
	hydrateValue(connector Connector, raw interface{}, response *Response) (interface{}, error)
}

// ResourceKind describes a resource type and how to construct it.
type ResourceKind[T Resource] struct {
	name   string
	newFn  func() T
	prefix string
}

// NewResourceKind creates a kind. prefix is the id prefix used to validate
// ids before a call is made; it may be empty.
func NewResourceKind[T Resource](name, prefix string, newFn func() T) *ResourceKind[T] {
	return &ResourceKind[T]{name: name, newFn: newFn, prefix: prefix}
}

// Name returns the resource type name.
func (k *ResourceKind[T]) Name() string {
	if k == nil {
		return ""
	}

	return k.name
}

// IDPrefix returns the id prefix, such as "tr_" for payments.
func (k *ResourceKind[T]) IDPrefix() string {
	return k.prefix
}

func (k *ResourceKind[T]) hydrateValue(connector Connector, raw interface{}, response *Response) (interface{}, error) {
	return k.hydrate(connector, raw, response)
}

// CollectionKind describes a collection of one resource kind. Key is the
// name of the list under _embedded in list responses.
type CollectionKind[T Resource] struct {
	name string
	key  string
	elem *ResourceKind[T]
}

// NewCollectionKind creates a collection kind.
func NewCollectionKind[T Resource](name, key string, elem *ResourceKind[T]) *CollectionKind[T] {
	return &CollectionKind[T]{name: name, key: key, elem: elem}
}

// CollectionOf derives the collection kind for elem. Its name is the element
// name followed by "Collection".
func CollectionOf[T Resource](elem *ResourceKind[T], key string) *CollectionKind[T] {
	return NewCollectionKind(collectionName(elem.Name()), key, elem)
}

// Name returns the collection type name.
func (k *CollectionKind[T]) Name() string {
	if k == nil {
		return ""
	}

	return k.name
}

// Key returns the _embedded key of list responses.
func (k *CollectionKind[T]) Key() string {
	return k.key
}

// Element returns the element kind.
func (k *CollectionKind[T]) Element() *ResourceKind[T] {
	return k.elem
}

func (k *CollectionKind[T]) hydrateValue(connector Connector, raw interface{}, response *Response) (interface{}, error) {
	if k == nil || k.elem == nil {
		return nil, fmt.Errorf("%w: collection kind without element kind", ErrUnrecognizedType)
	}

	var items []interface{}

	switch value := raw.(type) {
	case nil:
	case []interface{}:
		items = value
	default:
		return nil, fmt.Errorf("%w: embedded %s must be an array, got %T", ErrInvalidArgument, k.name, raw)
	}

	return HydrateCollection(connector, items, k.elem, response, nil, k)
}

func collectionName(elementName string) string {
	return elementName + "Collection"
}

var collectionRegistry = struct {
	sync.RWMutex
	kinds map[string]Kind
}{kinds: make(map[string]Kind)}

// RegisterCollection makes kind discoverable by its element type, so callers
// that pass no collection kind get it by name. It returns kind for use in
// package-level declarations.
func RegisterCollection[T Resource](kind *CollectionKind[T]) *CollectionKind[T] {
	collectionRegistry.Lock()
	defer collectionRegistry.Unlock()

	collectionRegistry.kinds[kind.Name()] = kind

	return kind
}

// CollectionKindFor returns the registered collection kind named
// "<element name>Collection".
func CollectionKindFor[T Resource](elem *ResourceKind[T]) (*CollectionKind[T], error) {
	name := collectionName(elem.Name())

	collectionRegistry.RLock()
	kind, ok := collectionRegistry.kinds[name]
	collectionRegistry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no collection registered as %s", ErrUnrecognizedType, name)
	}

	typed, ok := kind.(*CollectionKind[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s does not hold %s elements", ErrUnrecognizedType, name, elem.Name())
	}

	return typed, nil
}
