// Package logger provides structured logging for arete-utilities using
// zerolog.
//
// The library's pure computation never logs; the packages that touch the
// outside world (chart rendering, file manipulation) log through
// component-scoped loggers obtained from Get.
//
// # Usage
//
//	log := logger.Get("chart")
//	log.Info("rendered graph", logger.Fields("path", path))
package logger
