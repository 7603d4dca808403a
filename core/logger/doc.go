// Package logger builds the application's zap loggers.
//
// Every surface of the outfit picker logs through zap: the HTTP features,
// the reconciler, and the CLI commands. This package owns the single factory
// they all use, so level and encoding are decided in one place by the log
// configuration instead of per call site.
//
// # Formats
//
// Two encodings are supported. "console" produces colored, human-ordered
// output and is the default since the picker is primarily driven from a
// terminal (pick, wear, reconcile). "json" is for the server under a log
// aggregator.
//
// # Request correlation
//
// The rayid middleware stamps every request with an id and stores it in
// fiber locals. WithRayID reads it back and attaches it as a log field, so
// a pick and the wear that follows it can be traced across log lines:
//
//	l := logger.WithRayID(logg, c)
//	l.Info("Outfit picked", zap.String("category", category))
package logger
