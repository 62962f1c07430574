package server

import (
	"fmt"
	"io"
)

// StoppedMessage is printed when the server exits on an interrupt.
const StoppedMessage = "🛑 Server stopped by user"

// Banner writes the startup banner shown once the listener is bound.
func Banner(w io.Writer, port int, root string) {
	fmt.Fprintln(w, "🚀 Static server is running at:")
	fmt.Fprintf(w, "   Local:    http://localhost:%d\n", port)
	fmt.Fprintf(w, "   Network:  http://0.0.0.0:%d\n", port)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "📁 Serving files from: %s\n", root)
	fmt.Fprintln(w, "🛑 Press Ctrl+C to stop the server")
	fmt.Fprintln(w)
}
