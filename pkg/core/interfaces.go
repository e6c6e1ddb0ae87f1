package core

// Logger is the logging sink used by renderers, loaders and the web console
type Logger interface {
	Printf(format string, args ...interface{})
}
