// Package resp renders list values and errors in the Redis serialization
// protocol, so demo output can be piped into RESP-speaking tools.
package resp

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/Avik32223/linked-list/pkg/lists"
)

func SerializeSimpleString(m string) (string, error) {
	return fmt.Sprintf("+%s\r\n", m), nil
}

func SerializeSimpleError(err error) (string, error) {
	return fmt.Sprintf("-%s\r\n", err), nil
}

func SerializeInt(m int64) (string, error) {
	return fmt.Sprintf(":%d\r\n", m), nil
}

func SerializeBulkString(m string) (string, error) {
	return fmt.Sprintf("$%d\r\n%s\r\n", len(m), m), nil
}

func SerializeNull() (string, error) {
	return "$-1\r\n", nil
}

func SerializeArray(m []any) (string, error) {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("*%d\r\n", len(m)))
	for _, i := range m {
		result, err := Serialize(i)
		if err != nil {
			return "", err
		}
		s.WriteString(result)
	}
	return s.String(), nil
}

func SerializeBulkError(m error) (string, error) {
	return fmt.Sprintf("!%d\r\n%s\r\n", len(m.Error()), m), nil
}

func hasControl(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsControl(r) || r == '\n' || r == '\r'
	})
}

func SerializeError(m error) (string, error) {
	if hasControl(m.Error()) {
		return SerializeBulkError(m)
	}
	return SerializeSimpleError(m)
}

func SerializeString(m string) (string, error) {
	if hasControl(m) {
		return SerializeBulkString(m)
	}
	return SerializeSimpleString(m)
}

// Serialize encodes m as a single RESP value. A *lists.List becomes an
// array of integers.
func Serialize(m any) (string, error) {
	if m == nil {
		return SerializeNull()
	}

	switch mt := m.(type) {
	case *lists.List:
		return SerializeArray(mt.Values())
	case []int:
		a := make([]any, 0, len(mt))
		for _, v := range mt {
			a = append(a, v)
		}
		return SerializeArray(a)
	case []any:
		return SerializeArray(mt)
	case string:
		return SerializeString(mt)
	case error:
		return SerializeError(mt)
	}

	rv := reflect.ValueOf(m)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return SerializeInt(rv.Int())
	}
	return "", fmt.Errorf("failed to Serialize %#v", m)
}
