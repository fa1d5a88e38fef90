package logger

var Default Logger

func Debug(msg string, ds ...LoggingDetail) {
	Default.Debug(msg, ds...)
}

func Info(msg string, ds ...LoggingDetail) {
	Default.Info(msg, ds...)
}

func Warn(msg string, ds ...LoggingDetail) {
	Default.Warn(msg, ds...)
}

func Error(msg string, ds ...LoggingDetail) {
	Default.Error(msg, ds...)
}

func IsEnabled(level loggingLevel) bool {
	return Default.IsEnabled(level)
}
