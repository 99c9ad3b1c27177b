package bridge

import (
	"fmt"
	"net"
)

// UDPSender sends each payload as a single datagram to a fixed address.
// A fresh socket is opened per send and closed immediately after; no
// connection state is kept between calls. Payloads larger than what fits in
// one datagram are the transport's problem — there is no chunking.
type UDPSender struct {
	addr string
}

// NewUDPSender creates a Sender targeting the given host:port.
func NewUDPSender(addr string) *UDPSender {
	return &UDPSender{addr: addr}
}

var _ Sender = (*UDPSender)(nil)

// Send writes payload as one datagram. It returns as soon as the kernel has
// accepted the datagram; nothing is known about delivery.
func (s *UDPSender) Send(payload []byte) error {
	conn, err := net.Dial("udp", s.addr)
	if err != nil {
		return fmt.Errorf("dial udp %s: %w", s.addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("send datagram to %s: %w", s.addr, err)
	}
	return nil
}
