package parser

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/neurotwin/core/internal/result"
	"github.com/neurotwin/core/internal/verify"
)

// ValidationError locates the first violation found in a validated value.
// Field is the fully qualified path, e.g. "regions[2].position.x".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func invalid(path, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   path,
		Message: fmt.Sprintf("Expected %s "+format, append([]any{path}, args...)...),
	}
}

// normalize turns typed Go values (for example an already validated
// models.BrainModel) into the untyped shape produced by decoding JSON.
// Values that cannot be encoded as JSON, such as a struct holding an
// infinite float, yield an error.
func normalize(value any) (any, error) {
	switch value.(type) {
	case nil, map[string]any, []any, string, bool, float64:
		return value, nil
	}
	if !verify.IsDefined(value) {
		return value, nil
	}

	kind := reflect.TypeOf(value).Kind()
	if kind != reflect.Struct && kind != reflect.Pointer && kind != reflect.Slice && kind != reflect.Map {
		return value, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// rootObject normalizes value and checks that it is an object before any
// field is read.
func rootObject(value any, path, entity string) (map[string]any, *ValidationError) {
	name := path
	if name == "" {
		name = entity
	}

	normalized, err := normalize(value)
	if err != nil {
		return nil, &ValidationError{
			Field:   path,
			Message: fmt.Sprintf("Expected %s to be encodable as JSON: %v", name, err),
		}
	}

	obj, ok := normalized.(map[string]any)
	if ok && obj != nil {
		return obj, nil
	}
	return nil, &ValidationError{
		Field:   path,
		Message: fmt.Sprintf("Expected %s to be an object", name),
	}
}

// fieldReader reads typed fields out of a decoded object. The first failure
// sticks: once err is set every later read is a no-op returning a zero value,
// so validators can list their checks in order without branching after each.
type fieldReader struct {
	obj  map[string]any
	path string
	err  *ValidationError
}

func newFieldReader(obj map[string]any, path string) *fieldReader {
	return &fieldReader{obj: obj, path: path}
}

func (r *fieldReader) fail(err *ValidationError) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	s, ok := verify.Lookup(r.obj, key).(string)
	if !ok {
		r.fail(invalid(joinPath(r.path, key), "to be a string"))
	}
	return s
}

func (r *fieldReader) isoDate(key string) string {
	s := r.str(key)
	if r.err != nil {
		return ""
	}
	if !isISODate(s) {
		r.fail(invalid(joinPath(r.path, key), "to be an ISO 8601 date string"))
	}
	return s
}

func (r *fieldReader) enum(key string, allowed []string) string {
	if r.err != nil {
		return ""
	}
	s, ok := verify.Lookup(r.obj, key).(string)
	if !ok || !slices.Contains(allowed, s) {
		r.fail(invalid(joinPath(r.path, key), "to be one of [%s]", strings.Join(allowed, ", ")))
		return ""
	}
	return s
}

func (r *fieldReader) number(key string) float64 {
	if r.err != nil {
		return 0
	}
	n, ok := verify.Number(verify.Lookup(r.obj, key))
	if !ok {
		r.fail(invalid(joinPath(r.path, key), "to be a number"))
	}
	return n
}

func (r *fieldReader) unit(key string) float64 {
	n := r.number(key)
	if r.err == nil && !inUnitRange(n) {
		r.fail(invalid(joinPath(r.path, key), "between 0 and 1"))
	}
	return n
}

func (r *fieldReader) nonNegative(key string) float64 {
	n := r.number(key)
	if r.err == nil && n < 0 {
		r.fail(invalid(joinPath(r.path, key), "to be a non-negative number"))
	}
	return n
}

func (r *fieldReader) boolean(key string) bool {
	if r.err != nil {
		return false
	}
	b, ok := verify.Lookup(r.obj, key).(bool)
	if !ok {
		r.fail(invalid(joinPath(r.path, key), "to be a boolean"))
	}
	return b
}

func (r *fieldReader) object(key string) map[string]any {
	if r.err != nil {
		return nil
	}
	obj, ok := verify.Lookup(r.obj, key).(map[string]any)
	if !ok || obj == nil {
		r.fail(invalid(joinPath(r.path, key), "to be an object"))
		return nil
	}
	return cloneObject(obj)
}

func (r *fieldReader) array(key string) []any {
	if r.err != nil {
		return nil
	}
	items, ok := verify.Lookup(r.obj, key).([]any)
	if !ok {
		r.fail(invalid(joinPath(r.path, key), "to be an array"))
		return nil
	}
	return items
}

func (r *fieldReader) stringList(key string) []string {
	items := r.array(key)
	if r.err != nil {
		return nil
	}
	path := joinPath(r.path, key)
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			r.fail(invalid(indexPath(path, i), "to be a string"))
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (r *fieldReader) optString(key string) *string {
	if r.err != nil || !verify.IsDefined(verify.Lookup(r.obj, key)) {
		return nil
	}
	s := r.str(key)
	if r.err != nil {
		return nil
	}
	return &s
}

func (r *fieldReader) optEnum(key string, allowed []string) *string {
	if r.err != nil || !verify.IsDefined(verify.Lookup(r.obj, key)) {
		return nil
	}
	s := r.enum(key, allowed)
	if r.err != nil {
		return nil
	}
	return &s
}

func (r *fieldReader) optNumber(key string) *float64 {
	if r.err != nil || !verify.IsDefined(verify.Lookup(r.obj, key)) {
		return nil
	}
	n := r.number(key)
	if r.err != nil {
		return nil
	}
	return &n
}

func (r *fieldReader) optUnit(key string) *float64 {
	if r.err != nil || !verify.IsDefined(verify.Lookup(r.obj, key)) {
		return nil
	}
	n := r.unit(key)
	if r.err != nil {
		return nil
	}
	return &n
}

// nested validates obj[key] with an entity validator, extending the path.
func nested[T any](r *fieldReader, key string, validate func(any, string) result.Result[T]) T {
	var zero T
	if r.err != nil {
		return zero
	}
	res := validate(verify.Lookup(r.obj, key), joinPath(r.path, key))
	if !res.IsOk() {
		r.failWith(res.Err())
		return zero
	}
	return res.Value()
}

// arrayOf validates every element of obj[key] in ascending index order.
func arrayOf[T any](r *fieldReader, key string, validate func(any, string) result.Result[T]) []T {
	items := r.array(key)
	if r.err != nil {
		return nil
	}
	path := joinPath(r.path, key)
	out := make([]T, 0, len(items))
	for i, item := range items {
		res := validate(item, indexPath(path, i))
		if !res.IsOk() {
			r.failWith(res.Err())
			return nil
		}
		out = append(out, res.Value())
	}
	return out
}

func (r *fieldReader) failWith(err error) {
	if verr, ok := err.(*ValidationError); ok {
		r.fail(verr)
		return
	}
	r.fail(&ValidationError{Field: r.path, Message: err.Error()})
}

func inUnitRange(n float64) bool {
	return n >= 0 && n <= 1
}

func cloneObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneObject(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
