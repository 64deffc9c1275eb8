package filelog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Dump writes the contents of the provided value to the channel as
// debug-level records. It handles structs, maps, slices, pointers, and
// basic types; struct dumps cover exported fields only. Intended as a
// development aid, not a serialization format.
func (c *Channel) Dump(v interface{}) {
	if c == nil || !c.active.Load() {
		return
	}
	if v == nil {
		_ = c.Write(LevelDebug, "Dump: <nil>")
		return
	}

	// Track visited pointers to prevent infinite recursion.
	visited := make(map[uintptr]bool)
	c.dumpValue(v, "", visited, 0)
}

func (c *Channel) dumpValue(v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		_ = c.Write(LevelDebug, "%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		_ = c.Write(LevelDebug, "%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, with cycle detection.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				_ = c.Write(LevelDebug, "%s: <nil>", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				_ = c.Write(LevelDebug, "%s: <nil>", prefix)
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				_ = c.Write(LevelDebug, "%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == "" {
			_ = c.Write(LevelDebug, "Struct: %s", typ.Name())
		} else {
			_ = c.Write(LevelDebug, "%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != "" {
				fieldPrefix = prefix + "." + field.Name
			}
			c.dumpValue(fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != "" {
			_ = c.Write(LevelDebug, "%s: }", prefix)
		}

	case reflect.Map:
		_ = c.Write(LevelDebug, "%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			c.dumpValue(iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		_ = c.Write(LevelDebug, "%s: }", prefix)

	case reflect.Slice, reflect.Array:
		_ = c.Write(LevelDebug, "%s: %s (len: %d) {", prefix, typ.String(), val.Len())

		// Cap the number of elements written for large slices/arrays.
		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elem := val.Index(i)
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			if elem.CanInterface() {
				c.dumpValue(elem.Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxElements {
			_ = c.Write(LevelDebug, "%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		_ = c.Write(LevelDebug, "%s: }", prefix)

	default:
		if prefix == "" {
			prefix = "Dump"
		}
		if val.IsValid() && val.CanInterface() {
			_ = c.Write(LevelDebug, "%s: %v", prefix, val.Interface())
		} else {
			_ = c.Write(LevelDebug, "%s: %v", prefix, v)
		}
	}
}
