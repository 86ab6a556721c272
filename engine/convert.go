package engine

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ToValue converts a native Go value into an engine value: booleans,
// integers (64-bit widths become bigints), floats, strings, byte slices,
// pointers, slices, string-keyed maps, and structs (exported fields,
// lower-camel keys). It is the generic serialization half of the boundary.
func ToValue(s *Scope, v any) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t, nil
	case bool:
		return Boolean(t), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return BigInt(t), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return BigUint(t), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case []byte:
		return NewUint8Array(t), nil
	}
	return toValueReflect(s, reflect.ValueOf(v))
}

func toValueReflect(s *Scope, rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return ToValue(s, rv.Elem().Interface())
	case reflect.Bool:
		return Boolean(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return Number(float64(rv.Int())), nil
	case reflect.Int64:
		return BigInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Number(float64(rv.Uint())), nil
	case reflect.Uint64:
		return BigUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		elems := make([]*Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := ToValue(s, rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return NewArray(elems...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot convert map with %s keys", rv.Type().Key())
		}
		obj := NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := ToValue(s, iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}
			obj.Set(iter.Key().String(), ev)
		}
		return obj, nil
	case reflect.Struct:
		obj := NewObject()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			fv, err := ToValue(s, rv.Field(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			obj.Set(lowerCamel(f.Name), fv)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("cannot convert Go %s to an engine value", rv.Kind())
}

// FromValue converts an engine value into the native Go value dst points
// at. Conversions are strict: a number is never accepted where a string
// is expected, integer targets reject fractional or out-of-range numbers,
// and 64-bit targets additionally accept bigints.
func FromValue(s *Scope, v *Value, dst any) error {
	switch d := dst.(type) {
	case **Value:
		*d = v
		return nil
	case *bool:
		if !v.IsBoolean() {
			return fmt.Errorf("%s is not a boolean", v.Kind())
		}
		*d = v.Bool()
		return nil
	case *string:
		if !v.IsString() {
			return fmt.Errorf("%s is not a string", v.Kind())
		}
		*d = v.Str()
		return nil
	case *float64:
		f, err := numberOf(v)
		if err != nil {
			return err
		}
		*d = f
		return nil
	case *float32:
		f, err := numberOf(v)
		if err != nil {
			return err
		}
		*d = float32(f)
		return nil
	case *int32:
		i, err := integerOf(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		*d = int32(i)
		return nil
	case *uint32:
		i, err := integerOf(v, 0, math.MaxUint32)
		if err != nil {
			return err
		}
		*d = uint32(i)
		return nil
	case *int64:
		if v.IsBigInt() {
			*d = v.Int64()
			return nil
		}
		i, err := integerOf(v, math.MinInt64, math.MaxInt64)
		if err != nil {
			return err
		}
		*d = i
		return nil
	case *uint64:
		if v.IsBigInt() {
			*d = v.Uint64()
			return nil
		}
		i, err := integerOf(v, 0, math.MaxInt64)
		if err != nil {
			return err
		}
		*d = uint64(i)
		return nil
	case *[]byte:
		if !v.IsUint8Array() && !v.IsArrayBuffer() {
			return fmt.Errorf("%s is not a buffer", v.Kind())
		}
		*d = v.Bytes()
		return nil
	}
	return fromValueReflect(s, v, dst)
}

func fromValueReflect(s *Scope, v *Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("conversion target must be a non-nil pointer, got %T", dst)
	}
	elem := rv.Elem()

	switch elem.Kind() {
	case reflect.Pointer:
		if v.IsUndefined() || v.IsNull() {
			elem.SetZero()
			return nil
		}
		inner := reflect.New(elem.Type().Elem())
		if err := FromValue(s, v, inner.Interface()); err != nil {
			return err
		}
		elem.Set(inner)
		return nil
	case reflect.Slice:
		if !v.IsArray() {
			return fmt.Errorf("%s is not an array", v.Kind())
		}
		out := reflect.MakeSlice(elem.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			if err := FromValue(s, v.Index(i), out.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		elem.Set(out)
		return nil
	case reflect.Map:
		if !v.IsObject() {
			return fmt.Errorf("%s is not an object", v.Kind())
		}
		if elem.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("cannot convert into map with %s keys", elem.Type().Key())
		}
		out := reflect.MakeMap(elem.Type())
		for key, pv := range v.props {
			mv := reflect.New(elem.Type().Elem())
			if err := FromValue(s, pv, mv.Interface()); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			out.SetMapIndex(reflect.ValueOf(key), mv.Elem())
		}
		elem.Set(out)
		return nil
	case reflect.Struct:
		if !v.IsObject() {
			return fmt.Errorf("%s is not an object", v.Kind())
		}
		rt := elem.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			pv := v.Get(lowerCamel(f.Name))
			if pv.IsUndefined() {
				continue
			}
			if err := FromValue(s, pv, elem.Field(i).Addr().Interface()); err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("cannot convert %s into Go %s", v.Kind(), elem.Kind())
}

func numberOf(v *Value) (float64, error) {
	if v.IsNumber() {
		return v.Num(), nil
	}
	if v.IsBigInt() {
		return float64(v.Int64()), nil
	}
	return 0, fmt.Errorf("%s is not a number", v.Kind())
}

func integerOf(v *Value, min, max float64) (int64, error) {
	f, err := numberOf(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("number %v is not an integer", f)
	}
	if f < min || f > max {
		return 0, fmt.Errorf("number %v out of range", f)
	}
	return int64(f), nil
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
