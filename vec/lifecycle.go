package vec

import "reflect"

// construct produces the value stored for x.
func (v *Vector[T]) construct(x T) (T, error) {
	if v.lc.Copy == nil {
		return x, nil
	}
	return v.lc.Copy(x)
}

// destroy ends the life of a stored value.
func (v *Vector[T]) destroy(x T) {
	if v.lc.Destroy != nil {
		v.lc.Destroy(x)
	}
}

// destroyAll destroys elems in order. If a Destroy hook panics, the
// remaining elements are still destroyed before the panic continues.
func (v *Vector[T]) destroyAll(elems []T) {
	done := 0
	defer func() {
		if done < len(elems) {
			v.destroyAll(elems[done+1:])
		}
	}()
	for _, x := range elems {
		v.destroy(x)
		done++
	}
}

func (v *Vector[T]) equal(a, b T) bool {
	if v.lc.Equal != nil {
		return v.lc.Equal(a, b)
	}
	return ShallowEqual(a, b)
}

// ShallowEqual reports whether a and b are the same value without looking
// through references: comparable values use ==, slices compare by backing
// array and length, maps, channels, funcs and pointers by identity.
// Values that cannot be compared this way (structs holding slices, interface
// values with uncomparable dynamic types) are never equal.
func ShallowEqual[T any](a, b T) bool {
	return sameValue(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func sameValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Slice:
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return sameValue(ea, eb)
	}
	if !a.Comparable() || !b.Comparable() {
		return false
	}
	return a.Equal(b)
}
