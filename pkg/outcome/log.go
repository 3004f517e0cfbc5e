package outcome

import "github.com/ooni/wrappers/internal/model"

// Warn logs o and returns it unchanged. A [Failure] is logged as a
// warning, a [Success] at debug level. A nil logger discards messages.
func Warn[T, E any](logger model.Logger, operation string, o Outcome[T, E]) Outcome[T, E] {
	logger = model.ValidLoggerOrDefault(logger)
	if o.IsFailure() {
		logger.Warnf("%s... %s", operation, o)
	} else {
		logger.Debugf("%s... %s", operation, o)
	}
	return o
}
