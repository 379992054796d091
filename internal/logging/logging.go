/*
Package logging resolves the "// TODO: configure logging for go sdk" markers left in
the teacher's stream/publisher.go and stream/subscriber.go. It constructs the default
*zap.Logger used across the Client and the stream package, matching the production
JSON encoder the rest of the corpus builds its services on.
*/
package logging

import "go.uber.org/zap"

// New builds the default production logger: JSON encoding, info level. Callers that
// want a different configuration (development console encoding, debug level) should
// build their own *zap.Logger and pass it via WithLogger instead of calling this.
func New() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails if the default config cannot open its sink;
		// fall back to a logger that never fails to construct.
		return zap.NewNop()
	}
	return logger
}
