package tcg

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ArrayEncoding selects how a multi-valued field is put on the wire.
type ArrayEncoding int

const (
	// ArrayJoin encodes the values as one comma-delimited query value. This
	// is the API's convention for filter fields.
	ArrayJoin ArrayEncoding = iota

	// ArrayRepeat encodes the values as repeated query entries under the
	// same key.
	ArrayRepeat
)

// fieldPolicy is the per-field serialization rule consulted by Values and
// Body. Fields without a policy pass through under their own name with
// comma-joined arrays.
type fieldPolicy struct {
	alias  string
	arrays ArrayEncoding
}

// fieldPolicies is the wire alias table. The search text field is the only
// field the API renames.
var fieldPolicies = map[string]fieldPolicy{
	"query": {alias: "q"},
}

// Params holds call parameters for one request. Values may be strings, ints,
// floats, bools, or string slices. A nil value is treated as absent and never
// serialized. Params is owned by the caller; serialization produces new
// objects and never mutates it.
type Params map[string]any

// NewParams creates an empty parameter set.
func NewParams() Params {
	return Params{}
}

// With sets an arbitrary parameter and returns the set for chaining.
func (p Params) With(name string, value any) Params {
	p[name] = value

	return p
}

// WithQuery sets the search text. Serialized under the wire key "q".
func (p Params) WithQuery(query string) Params {
	return p.With("query", query)
}

// WithGame filters by game ID.
func (p Params) WithGame(game string) Params {
	return p.With("game", game)
}

// WithSet filters by set ID.
func (p Params) WithSet(set string) Params {
	return p.With("set", set)
}

// WithLimit sets the page size.
func (p Params) WithLimit(limit int) Params {
	return p.With("limit", limit)
}

// Limit returns the page size stored in the parameters, or zero when unset.
// Pagination helpers use it to honor a caller-chosen page size.
func (p Params) Limit() int {
	limit, _ := p["limit"].(int)

	return limit
}

// WithOffset sets the page offset.
func (p Params) WithOffset(offset int) Params {
	return p.With("offset", offset)
}

// WithOrderBy sets the sort field.
func (p Params) WithOrderBy(field string) Params {
	return p.With("orderBy", field)
}

// WithOrder sets the sort direction ("asc" or "desc").
func (p Params) WithOrder(direction string) Params {
	return p.With("order", direction)
}

// WithCondition filters variants by one or more conditions.
func (p Params) WithCondition(conditions ...string) Params {
	return p.With("condition", conditions)
}

// WithPrinting filters variants by one or more printings.
func (p Params) WithPrinting(printings ...string) Params {
	return p.With("printing", printings)
}

// Clone returns a shallow copy. Slice values are copied so that the clone can
// be serialized independently of later mutation of the original.
func (p Params) Clone() Params {
	clone := make(Params, len(p))

	for name, value := range p {
		if slice, ok := value.([]string); ok {
			clone[name] = append([]string(nil), slice...)

			continue
		}

		clone[name] = value
	}

	return clone
}

// Values serializes the parameters for a URL query string. Absent (nil)
// fields are omitted, aliases from the policy table are applied, and array
// values are joined with commas since the API expects one delimited value per
// key. Values never fails; a value of an unexpected type is rendered with its
// default format.
func (p Params) Values() url.Values {
	values := url.Values{}

	for name, value := range p {
		policy := fieldPolicies[name]

		key := name
		if policy.alias != "" {
			key = policy.alias
		}

		if slice, ok := value.([]string); ok {
			if len(slice) == 0 {
				continue
			}

			if policy.arrays == ArrayRepeat {
				for _, entry := range slice {
					values.Add(key, entry)
				}
			} else {
				values.Set(key, strings.Join(slice, ","))
			}

			continue
		}

		encoded, ok := encodeScalar(value)
		if !ok {
			continue
		}

		values.Set(key, encoded)
	}

	return values
}

// Body serializes the parameters for a JSON request body. Absent fields are
// omitted and aliases applied; array values stay arrays.
func (p Params) Body() map[string]any {
	body := make(map[string]any, len(p))

	for name, value := range p {
		if value == nil {
			continue
		}

		if text, ok := value.(string); ok && text == "" {
			continue
		}

		key := name
		if policy, ok := fieldPolicies[name]; ok && policy.alias != "" {
			key = policy.alias
		}

		// Bodies keep arrays intact regardless of the query-side rule.
		if slice, ok := value.([]string); ok {
			if len(slice) == 0 {
				continue
			}

			body[key] = append([]string(nil), slice...)

			continue
		}

		body[key] = value
	}

	return body
}

// encodeScalar renders one scalar value for query serialization. The boolean
// result is false when the value is absent and must be omitted.
func encodeScalar(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	switch typed := value.(type) {
	case string:
		if typed == "" {
			return "", false
		}

		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		return fmt.Sprintf("%v", typed), true
	}
}
