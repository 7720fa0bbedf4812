package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Logger environment switches
const (
	LogDetailEnvVar = "LOG_DETAIL"
	LogColorEnvVar  = "LOG_COLOR"
	LogDirEnvVar    = "LOG_DIR"
	DefaultLogDir   = "logs"
)

var (
	detailedLoggingEnabled bool
	coloredLoggingEnabled  bool
	logFile                *os.File
	logger                 *log.Logger
)

// InitLogger sets up console + file logging. LOG_DETAIL=true adds caller
// information, LOG_COLOR=false disables ANSI colors on the console.
func InitLogger() {
	detailedLoggingEnabled = strings.ToLower(os.Getenv(LogDetailEnvVar)) == "true"
	coloredLoggingEnabled = os.Getenv(LogColorEnvVar) != "false"

	logDir := os.Getenv(LogDirEnvVar)
	if logDir == "" {
		logDir = DefaultLogDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("Failed to create log directory: %v", err)
	}

	logFilePath := filepath.Join(logDir, fmt.Sprintf("hour-farm-%s.log", time.Now().Format("2006-01-02")))

	var err error
	logFile, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
	} else {
		multiWriter := io.MultiWriter(os.Stdout, logFile)
		logger = log.New(multiWriter, "", log.LstdFlags)
		log.SetOutput(multiWriter)
		log.SetFlags(log.LstdFlags)
	}

	LogInfo("Logging initialized. Logs will be saved to: %s", logFilePath)
}

// CloseLogger closes the log file
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logWithLevel("DEBUG", ColorCyan, format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logWithLevel("INFO", ColorGreen, format, args...)
}

// LogWarning logs a warning message
func LogWarning(format string, args ...interface{}) {
	logWithLevel("WARNING", ColorYellow, format, args...)
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logWithLevel("ERROR", ColorRed, format, args...)
}

func logWithLevel(level string, color string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	coloredLevelStr := level
	if coloredLoggingEnabled {
		coloredLevelStr = color + level + ColorReset
	}

	if detailedLoggingEnabled {
		_, file, line, ok := runtime.Caller(2)
		if !ok {
			file = "unknown"
			line = 0
		}
		fileInfo := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if logger != nil {
			logger.Printf("[%s] %s - %s", level, fileInfo, message)
		} else {
			log.Printf("[%s] %s - %s", coloredLevelStr, fileInfo, message)
		}
		return
	}

	if logger != nil {
		logger.Printf("[%s] %s", level, message)
	} else {
		log.Printf("[%s] %s", coloredLevelStr, message)
	}
}
