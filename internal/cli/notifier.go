package cli

import (
	"fmt"
	"io"
	"sync"

	"user-post-service/pkg/client/view"
)

// toastNotifier prints mutation outcomes as one-line toasts.
type toastNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func newToastNotifier(out io.Writer) *toastNotifier {
	return &toastNotifier{out: out}
}

func (n *toastNotifier) Success(message string) { n.print(true, message) }
func (n *toastNotifier) Error(message string)   { n.print(false, message) }

func (n *toastNotifier) print(success bool, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, view.Toast(success, message))
}
