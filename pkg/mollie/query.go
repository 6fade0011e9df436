package mollie

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents query parameters for list and get calls.
type QueryParams struct {
	From      string              `json:"from,omitempty"`
	Limit     int                 `json:"limit,omitempty"`
	Sort      string              `json:"sort,omitempty"`
	ProfileID string              `json:"profileId,omitempty"`
	Embed     []string            `json:"embed,omitempty"`
	Include   []string            `json:"include,omitempty"`
	Filters   map[string][]string `json:"-"`
}

// NewQueryParams creates new query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithFrom sets the id of the first item of the page.
func (q *QueryParams) WithFrom(from string) *QueryParams {
	q.From = from

	return q
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSort sets the sort direction, "asc" or "desc".
func (q *QueryParams) WithSort(sort string) *QueryParams {
	q.Sort = sort

	return q
}

// WithProfileID sets the profile, required with OAuth credentials.
func (q *QueryParams) WithProfileID(profileID string) *QueryParams {
	q.ProfileID = profileID

	return q
}

// WithEmbed appends resources to embed.
func (q *QueryParams) WithEmbed(resources ...string) *QueryParams {
	q.Embed = append(q.Embed, resources...)

	return q
}

// WithInclude appends extra fields to include.
func (q *QueryParams) WithInclude(fields ...string) *QueryParams {
	q.Include = append(q.Include, fields...)

	return q
}

// WithFilter appends values to a filter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts query params to url.Values. A nil receiver yields nil.
func (q *QueryParams) ToValues() url.Values {
	if q == nil {
		return nil
	}

	values := url.Values{}

	if q.From != "" {
		values.Set("from", q.From)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	if q.ProfileID != "" {
		values.Set("profileId", q.ProfileID)
	}

	if len(q.Embed) > 0 {
		values.Set("embed", strings.Join(q.Embed, ","))
	}

	if len(q.Include) > 0 {
		values.Set("include", strings.Join(q.Include, ","))
	}

	for key, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
