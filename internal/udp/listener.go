package udp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"msgboard/internal/form"
	"msgboard/internal/service"
)

// maxDatagramSize bounds a single receive. Anything larger was truncated by
// the transport before it got here.
const maxDatagramSize = 64 * 1024

// Listener is the storage server's receive loop: one bound datagram socket,
// one message service, processed strictly one datagram at a time. There is no
// backpressure; traffic beyond the kernel receive buffer is dropped by the
// transport, not compensated for here.
type Listener struct {
	conn *net.UDPConn
	svc  service.MessageService

	received prometheus.Counter
	stored   prometheus.Counter
	skipped  *prometheus.CounterVec
}

// NewListener binds the datagram socket on addr and registers the listener's
// counters into reg.
func NewListener(addr string, svc service.MessageService, reg prometheus.Registerer) (*Listener, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve udp addr %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("bind udp %s: %w", addr, err)
	}

	l := &Listener{
		conn: conn,
		svc:  svc,
		received: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "udp_datagrams_received_total",
			Help: "Total number of datagrams received.",
		}),
		stored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "udp_messages_stored_total",
			Help: "Total number of messages persisted.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "udp_messages_skipped_total",
			Help: "Total number of datagrams that did not produce a record.",
		}, []string{"reason"}),
	}

	for _, coll := range []prometheus.Collector{l.received, l.stored, l.skipped} {
		if err := reg.Register(coll); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return l, nil
}

// Addr returns the bound local address (useful when the port was 0).
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Close closes the socket, unblocking Run.
func (l *Listener) Close() error {
	return l.conn.Close()
}

// Run receives datagrams until the socket is closed or ctx is canceled. Each
// datagram is fully handled — decoded, timestamped, inserted — before the
// next read. A failed insert is logged and the loop continues; nothing that
// happens to one datagram stops the server.
func (l *Listener) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = l.conn.Close()
	}()

	buf := make([]byte, maxDatagramSize)
	for {
		n, remote, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read datagram: %w", err)
		}

		l.received.Inc()
		l.handle(ctx, remote, buf[:n])
	}
}

func (l *Listener) handle(ctx context.Context, remote *net.UDPAddr, payload []byte) {
	// Copy out of the shared receive buffer before handing off.
	raw := append([]byte(nil), payload...)

	rec, err := l.svc.Record(ctx, raw)
	switch {
	case errors.Is(err, form.ErrIncomplete):
		l.skipped.WithLabelValues("incomplete").Inc()
		logJSON(map[string]any{
			"level":  "info",
			"msg":    "message_skipped",
			"reason": "empty username or message",
			"remote": remote.String(),
		})
	case err != nil:
		l.skipped.WithLabelValues("insert_failed").Inc()
		logJSON(map[string]any{
			"level":  "error",
			"msg":    "message_insert_failed",
			"remote": remote.String(),
			"error":  err.Error(),
		})
	default:
		l.stored.Inc()
		logJSON(map[string]any{
			"level":    "info",
			"msg":      "message_stored",
			"id":       rec.ID,
			"date":     rec.Date,
			"username": rec.Username,
			"remote":   remote.String(),
		})
	}
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().Format(time.RFC3339Nano)
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
