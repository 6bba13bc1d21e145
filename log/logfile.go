package log

import (
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// JSONFormat print log in json format
var JSONFormat bool

// SetLogFile set log file path and rotation, rotation and maxAge are in hours
func SetLogFile(logFile string, logRotation, logMaxAge uint64) {
	if logFile == "" {
		return
	}
	if logRotation == 0 {
		logRotation = 24
	}
	options := []rotatelogs.Option{
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithRotationTime(time.Duration(logRotation) * time.Hour),
	}
	if logMaxAge != 0 {
		options = append(options, rotatelogs.WithMaxAge(time.Duration(logMaxAge)*time.Hour))
	}
	logWriter, err := rotatelogs.New(logFile+".%Y%m%d%H", options...)
	if err != nil {
		logrus.Fatalf("set log file '%v' failed. %v", logFile, err)
	}
	logrus.SetOutput(logWriter)
	if !JSONFormat {
		// no colors in files
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			ForceQuote:      true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			DisableSorting:  true,
		})
	}
}
