package mollie

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

const embeddedKey = "_embedded"

// Hydrate maps a JSON object onto a new resource of kind. data is either the
// *Response itself, whose body is used, or an already decoded JSON value. In
// the second case response must be given so the resource can be traced back
// to the call that produced it.
func Hydrate[T Resource](connector Connector, data interface{}, kind *ResourceKind[T], response *Response) (T, error) {
	return kind.hydrate(connector, data, response)
}

// HydrateResponse hydrates the body of response.
func HydrateResponse[T Resource](connector Connector, response *Response, kind *ResourceKind[T]) (T, error) {
	return kind.hydrate(connector, response, nil)
}

func (k *ResourceKind[T]) hydrate(connector Connector, data interface{}, response *Response) (T, error) {
	var zero T

	if k == nil || k.newFn == nil {
		return zero, fmt.Errorf("%w: resource kind has no constructor", ErrUnrecognizedType)
	}

	if resp, ok := data.(*Response); ok {
		if resp == nil {
			return zero, fmt.Errorf("%w: response is required", ErrInvalidArgument)
		}

		response = resp

		parsed, err := resp.JSON()
		if err != nil {
			return zero, err
		}

		data = parsed
	} else if response == nil {
		return zero, fmt.Errorf("%w: response is required", ErrInvalidArgument)
	}

	fields, err := asObject(data)
	if err != nil {
		return zero, fmt.Errorf("hydrating %s: %w", k.name, err)
	}

	resource := k.newFn()
	if isNilResource(resource) {
		return zero, fmt.Errorf("%w: %s constructor returned nil", ErrUnrecognizedType, k.name)
	}

	resource.base().bind(connector, response)

	if target, ok := any(resource).(fillable); ok {
		target.fill(fields)

		return resource, nil
	}

	embeds, holdsEmbedded := any(resource).(EmbedsResources)
	if raw, present := fields[embeddedKey]; present && raw != nil && holdsEmbedded {
		embedded, err := hydrateEmbedded(connector, k.name, embeds.EmbeddedResourcesMap(), raw, response)
		if err != nil {
			return zero, err
		}

		resource.base().Embedded = embedded
		fields = without(fields, embeddedKey)
	}

	err = decodeFields(resource, fields)
	if err != nil {
		return zero, fmt.Errorf("hydrating %s: %w", k.name, err)
	}

	return resource, nil
}

func hydrateEmbedded(
	connector Connector,
	resourceName string,
	mapping map[string]Kind,
	raw interface{},
	response *Response,
) (map[string]interface{}, error) {
	embedded, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s %s is %T, not an object", ErrEmbeddedResourcesNotParseable, resourceName, embeddedKey, raw)
	}

	keys := make([]string, 0, len(embedded))
	for key := range embedded {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	result := make(map[string]interface{}, len(embedded))

	for _, key := range keys {
		target, mapped := mapping[key]
		if !mapped {
			return nil, &EmbeddedResourcesNotParseableError{Resource: resourceName, Key: key}
		}

		if target == nil || isNilKind(target) {
			return nil, fmt.Errorf("%w: %s maps embedded %s to nothing", ErrUnrecognizedType, resourceName, key)
		}

		value, err := target.hydrateValue(connector, embedded[key], response)
		if err != nil {
			return nil, fmt.Errorf("hydrating embedded %s of %s: %w", key, resourceName, err)
		}

		result[key] = value
	}

	return result, nil
}

// decodeFields assigns fields onto resource through its json tags. Keys the
// struct does not declare are kept in Extra. A miss below a declared field
// keeps that field's raw value.
func decodeFields(resource Resource, fields map[string]interface{}) error {
	metadata := &mapstructure.Metadata{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Squash:   true,
		Metadata: metadata,
		Result:   resource,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(fields)
	if err != nil {
		return fmt.Errorf("decoding fields: %w", err)
	}

	if len(metadata.Unused) > 0 {
		extra := make(map[string]interface{}, len(metadata.Unused))
		for _, key := range metadata.Unused {
			top := topLevelKey(key)
			if value, ok := fields[top]; ok {
				extra[top] = value
			}
		}

		resource.base().Extra = extra
	}

	return nil
}

// topLevelKey strips the nested part of a mapstructure path such as
// "amount.newField" or "lines[0].sku".
func topLevelKey(path string) string {
	if index := strings.IndexAny(path, ".["); index > 0 {
		return path[:index]
	}

	return path
}

func asObject(data interface{}) (map[string]interface{}, error) {
	switch value := data.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return value, nil
	case Payload:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrInvalidArgument, data)
	}
}

func without(fields map[string]interface{}, key string) map[string]interface{} {
	copied := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k != key {
			copied[k] = v
		}
	}

	return copied
}

func isNilResource(resource Resource) bool {
	value := reflect.ValueOf(resource)

	return !value.IsValid() || (value.Kind() == reflect.Ptr && value.IsNil())
}

func isNilKind(kind Kind) bool {
	value := reflect.ValueOf(kind)

	return value.Kind() == reflect.Ptr && value.IsNil()
}
