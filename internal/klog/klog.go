// Package klog provides the single structured-logging seam used at
// mutation-phase transitions. Its only callers are package
// orchestrator's Materialize and the invalidation that a mutation after
// Materialize triggers. Hot-path query operations (ask, ask_batch,
// validate_node, is_subclass_of) never call into this package — they are
// total, allocation-free functions and must stay that way.
//
// The default logger is a no-op so the engines carry zero observability
// cost until a host process opts in via SetLogger.
package klog

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package-wide logger. Passing nil restores
// the no-op logger. Not safe to call concurrently with Phase/Error.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}

// Phase records a mutation-phase transition (materialize completion,
// invalidation) with structured key-value fields.
func Phase(event string, fields ...interface{}) {
	logger.Infow(event, fields...)
}

// Error records a mutation-phase failure. It never panics and never
// terminates the process; it is purely observational.
func Error(event string, err error, fields ...interface{}) {
	logger.Errorw(event, append([]interface{}{"error", err}, fields...)...)
}
