package mock

import "github.com/fwojciec/pagebrief"

var _ pagebrief.BrochureWriter = (*BrochureWriter)(nil)

// BrochureWriter is a mock implementation of pagebrief.BrochureWriter.
type BrochureWriter struct {
	WriteFn func(title, content string) (string, error)
}

func (w *BrochureWriter) Write(title, content string) (string, error) {
	return w.WriteFn(title, content)
}
