package logger

func Field(key string, value interface{}) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value interface{}
}

func (f field) addTo(e logEntry) {
	e[f.Key] = toFieldValue(f.Value)
}

type Fields map[string]interface{}

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{
		"message": err.Error(),
	})
}

type LoggingDetail interface{ addTo(logEntry) }

func toFieldValue(val interface{}) interface{} {
	switch val := val.(type) {
	case Fields:
		le := logEntry{}
		val.addTo(le)
		return map[string]interface{}(le)
	case LoggingDetail:
		le := logEntry{}
		val.addTo(le)
		return map[string]interface{}(le)
	default:
		return val
	}
}

type logEntry map[string]interface{}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(logEntry) {}
