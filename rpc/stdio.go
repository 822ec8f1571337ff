package rpc

import "io"

// Stdio joins a reader and a writer, such as a process's stdin and stdout,
// into a stream for ServeConn or NewClient.
func Stdio(r io.Reader, w io.Writer) io.ReadWriteCloser {
	return &stdioReadWriteCloser{read: r, write: w}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
