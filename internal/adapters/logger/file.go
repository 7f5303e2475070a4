package logger

import (
	"go.trai.ch/rscript/internal/core/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileSink returns the rotating log file configured in settings, or nil
// when none is configured. Nothing touches the disk until the first write;
// lumberjack creates the directory then.
func NewFileSink(settings *domain.Settings) (*lumberjack.Logger, error) {
	if settings == nil || settings.LogFile == "" {
		return nil, nil
	}

	return &lumberjack.Logger{
		Filename:   settings.LogFile,
		MaxSize:    settings.LogMaxSize,
		MaxBackups: settings.LogMaxBackups,
		LocalTime:  true,
	}, nil
}
