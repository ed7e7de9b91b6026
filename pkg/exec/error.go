package exec

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
)

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || isOsConnectionError(err) {
		return true
	}

	var dnsError *net.DNSError
	if errors.As(err, &dnsError) {
		return true
	}

	if strings.Contains(err.Error(), "read: connection reset") {
		return true
	}

	return IsUsedClosedConnectionError(err)
}

func IsUsedClosedConnectionError(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), net.ErrClosed.Error())
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	// context errors are handled separately, an expired deadline is not a
	// transport timeout from our point of view
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if isOsTimeoutError(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return IsIoTimeoutError(err) || IsClientAwaitHeadersTimeoutError(err) || IsTlsHandshakeTimeoutError(err)
}

func IsIoTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "i/o timeout")
}

func IsClientAwaitHeadersTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "(Client.Timeout exceeded while awaiting headers)")
}

func IsTlsHandshakeTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "net/http: TLS handshake timeout")
}
