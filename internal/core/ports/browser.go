package ports

// BrowserOpener opens a URL in the operator's default browser. Implementations
// report ErrNoOpener-style failures; callers decide whether that is fatal.
type BrowserOpener interface {
	Open(url string) error
}
