package observability

import "time"

type Field struct {
	Key   string
	Value any
}

func String(k, v string) Field {
	return Field{Key: k, Value: v}
}

func Int(k string, v int) Field {
	return Field{Key: k, Value: v}
}

func Int64(k string, v int64) Field {
	return Field{Key: k, Value: v}
}

func Duration(k string, v time.Duration) Field {
	return Field{Key: k, Value: v}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

func Bool(k string, v bool) Field {
	return Field{Key: k, Value: v}
}
