package mocks

import "github.com/stretchr/testify/mock"

const maxLoggedFields = 8

// AllowLogs lets the Logger mock accept any log call with up to
// maxLoggedFields fields. Expectations registered before it take precedence.
func AllowLogs(logger *Logger) {
	for n := 1; n <= maxLoggedFields+1; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		logger.On("Debug", args...).Maybe()
		logger.On("Info", args...).Maybe()
		logger.On("Warn", args...).Maybe()
		logger.On("Error", args...).Maybe()
	}
}

// NewPermissiveLogger returns a Logger mock that accepts any log call
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	logger := NewLogger(t)
	AllowLogs(logger)
	return logger
}
