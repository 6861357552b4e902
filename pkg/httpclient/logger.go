package httpclient

import "reflect"

// Logger is what the client logs through. Each entry carries one structured
// object under key.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}

// ensureLogger falls back to a no-op logger for nil, including a typed nil
// pointer stored in the interface.
func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	if v := reflect.ValueOf(log); v.Kind() == reflect.Pointer && v.IsNil() {
		return noopLogger{}
	}
	return log
}
