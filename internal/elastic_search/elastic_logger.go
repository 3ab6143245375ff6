package elastic_search

import "go.uber.org/zap"

// ElasticLogger routes the elastic client's trace output into the zap log.
type ElasticLogger struct{}

func (ElasticLogger) Printf(format string, v ...interface{}) {
	zap.S().Debugf(format, v...)
}
