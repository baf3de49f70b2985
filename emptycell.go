package sheetimport

import "reflect"

// CellIsEmpty reports if a cell value counts as empty:
// nil, an empty string, false, and numeric zero are empty,
// any other value is not.
//
// Note that the string "0" is not empty,
// only the numeric zero value is.
func CellIsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return rv.IsZero()
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return CellIsEmpty(rv.Elem().Interface())
	}
	return false
}
