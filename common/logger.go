package common

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1
	DEBUG_INFO        LogLevel = 2
	RDB_OP_FUNC_CALL  LogLevel = 4
	DEBUGGING         LogLevel = 8
	INFO              LogLevel = 16
	WARN              LogLevel = 32
	ERROR             LogLevel = 64
	FATAL             LogLevel = 128
)

var logger = newLogger()

func newLogger() *log.Logger {
	l := log.New()
	l.SetLevel(log.TraceLevel)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return l
}

// SetLogOutput redirects all log output. tests use this to capture or mute messages.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ShPrintf prints a message when logLevel is enabled in LogLevelSetting.
// FATAL messages are logged at error level and do not terminate the process.
func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&LogLevelSetting == 0 {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(fmtStl, a...), "\n")
	switch {
	case logLevel&(ERROR|FATAL) > 0:
		logger.Error(msg)
	case logLevel&WARN > 0:
		logger.Warn(msg)
	case logLevel&INFO > 0:
		logger.Info(msg)
	case logLevel&(DEBUGGING|RDB_OP_FUNC_CALL) > 0:
		logger.Debug(msg)
	default:
		logger.Trace(msg)
	}
}
