package framedata

import (
	"fmt"
	"reflect"
)

// Supports reports whether values of type T can be pushed into a FrameData.
// T must not contain Go pointers at any nesting level: chunk memory is
// untyped bytes the garbage collector does not scan, so a pointer stored
// there would not keep its referent alive.
func Supports[T any]() bool {
	return !hasPointers(reflect.TypeFor[T]())
}

// checkPushable validates a type on its first push. Violations are contract
// failures and panic rather than returning an error.
func checkPushable(t reflect.Type, size, chunkSize uintptr) {
	if hasPointers(t) {
		panic(fmt.Sprintf("framedata: %s contains Go pointers and cannot live in chunk memory", t))
	}
	if uintptr(t.Align()) > ChunkAlignment {
		panic(fmt.Sprintf("framedata: alignment of %s (%d) exceeds chunk alignment %d", t, t.Align(), ChunkAlignment))
	}
	if size > chunkSize {
		panic(fmt.Sprintf("framedata: %s (%d bytes) does not fit in a %d-byte chunk", t, size, chunkSize))
	}
}

// hasPointers walks t looking for pointer-carrying kinds. Recursion is
// finite: a type can only reference itself through a kind that terminates
// the walk immediately.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
