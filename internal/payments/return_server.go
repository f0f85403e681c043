package payments

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusParam is the query parameter the processor appends to the
// configured return URL on redirect.
const StatusParam = "payment_status"

// StatusSuccess is the parameter value for a confirmed payment; any
// other value (typically "cancel") is treated as not completed.
const StatusSuccess = "success"

// Result is the parsed outcome of the processor redirect.
type Result struct {
	Status    string
	Succeeded bool
}

// ReturnServer is a loopback HTTP listener for the processor's return
// redirect. It serves exactly one result and is then shut down.
type ReturnServer struct {
	e       *echo.Echo
	addr    string
	results chan Result
}

func NewReturnServer(addr string) *ReturnServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &ReturnServer{e: e, addr: addr, results: make(chan Result, 1)}
	e.GET("/payments/return", s.handleReturn)
	return s
}

// Start binds the listener, reporting bind failures (port in use)
// immediately, then serves in the background.
func (s *ReturnServer) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.e.Listener = ln
	go func() {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("WARN: payment return listener stopped: %v", err)
		}
	}()
	return nil
}

// Addr reports the bound listener address; useful when the configured
// address requested an ephemeral port.
func (s *ReturnServer) Addr() net.Addr {
	if s.e.Listener == nil {
		return nil
	}
	return s.e.Listener.Addr()
}

// Wait blocks until the redirect arrives or ctx ends.
func (s *ReturnServer) Wait(ctx context.Context) (Result, error) {
	select {
	case result := <-s.results:
		return result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Shutdown stops the listener.
func (s *ReturnServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *ReturnServer) handleReturn(c echo.Context) error {
	result := ParseStatus(c.QueryParam(StatusParam))
	select {
	case s.results <- result:
	default:
		// A duplicate redirect; the first result stands.
	}

	message := "Payment canceled. You can close this window."
	if result.Succeeded {
		message = "Payment successful! You can close this window."
	}
	return c.HTML(http.StatusOK, "<html><body><p>"+message+"</p></body></html>")
}

// ParseStatus interprets the payment-status parameter value.
func ParseStatus(value string) Result {
	return Result{Status: value, Succeeded: value == StatusSuccess}
}
