package collection

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/traversal"
	"github.com/viant/xunsafe"
)

var structCache = newTypeCache[reflect.Type, *xunsafe.Struct]()

// Field is a struct field visited by Fields
type Field struct {
	Name  string
	Value interface{}
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%v", f.Name, f.Value)
}

// Fields is a read only collection of struct fields in declaration order
type Fields struct {
	ptr     unsafe.Pointer
	xStruct *xunsafe.Struct
}

// FieldsOf creates Fields from a struct or pointer to struct
func FieldsOf(value interface{}) (*Fields, error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct || reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	xStruct := structCache.getOrLoad(structType, func(t reflect.Type) *xunsafe.Struct {
		return xunsafe.NewStruct(t)
	})
	return &Fields{ptr: xunsafe.AsPointer(value), xStruct: xStruct}, nil
}

// Iterator implements traversal.Collection
func (f *Fields) Iterator() traversal.Iterator[Field] {
	return &fieldIterator{Fields: f, pos: -1}
}

type fieldIterator struct {
	*Fields
	pos int
}

func (i *fieldIterator) Next() bool {
	if i.pos < len(i.xStruct.Fields) {
		i.pos++
	}
	return i.pos < len(i.xStruct.Fields)
}

func (i *fieldIterator) Value() Field {
	if i.pos < 0 || i.pos >= len(i.xStruct.Fields) {
		return Field{}
	}
	xField := &i.xStruct.Fields[i.pos]
	return Field{Name: xField.Name, Value: xField.Value(i.ptr)}
}

func (i *fieldIterator) Remove() error {
	return traversal.ErrRemoveUnsupported
}
