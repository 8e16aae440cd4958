package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// Field is a formatted struct field. Nested structs without a String method
// are expanded into Children instead of a Value.
type Field struct {
	Name     string
	Value    string
	Children []Field
}

// Describe formats the exported fields of a struct, or a pointer to one, for
// display. Other values yield nil.
func Describe(v any) []Field {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return describeStruct(val)
}

func describeStruct(val reflect.Value) []Field {
	fields := globalReflectionCache.GetFields(val.Type())
	out := make([]Field, 0, len(fields))

	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				out = append(out, Field{Name: field.Name, Value: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		out = append(out, describeValue(field.Name, fieldVal))
	}

	return out
}

func describeValue(name string, val reflect.Value) Field {
	if !val.IsValid() || !val.CanInterface() {
		return Field{Name: name, Value: "<invalid>"}
	}

	if s, ok := val.Interface().(fmt.Stringer); ok {
		return Field{Name: name, Value: s.String()}
	}

	switch val.Kind() {
	case reflect.Struct:
		return Field{Name: name, Children: describeStruct(val)}

	case reflect.Slice:
		if val.IsNil() {
			return Field{Name: name, Value: "[]"}
		}
		switch val.Type().Elem().Kind() {
		case reflect.Slice, reflect.Array, reflect.Struct, reflect.Map:
			return Field{Name: name, Value: fmt.Sprintf("[%d items]", val.Len())}
		}
		return Field{Name: name, Value: fmt.Sprint(val.Interface())}

	case reflect.Array:
		return Field{Name: name, Value: fmt.Sprintf("[%d items]", val.Len())}

	case reflect.Map:
		return Field{Name: name, Value: fmt.Sprintf("map[%d items]", val.Len())}

	default:
		return Field{Name: name, Value: fmt.Sprint(val.Interface())}
	}
}
