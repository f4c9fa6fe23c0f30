// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// RayIDs (request ids) are carried two ways: WithRayID reads them from a Fiber
// context, and ContextWithRayID / FromContext carry them through a plain
// context.Context into the storage facade and the journal.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Tour started")
//
//	// Deeper in the call chain:
//	logger.FromContext(log, ctx).Error("upload failed", zap.Error(err))
package logger
