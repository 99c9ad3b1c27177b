package bridge

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPSender_Send(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	sender := NewUDPSender(pc.LocalAddr().String())

	payload := []byte("username=alice&message=hi")
	require.NoError(t, sender.Send(payload))

	buf := make([]byte, 65535)
	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, payload, buf[:n])
}

func TestUDPSender_SendDialError(t *testing.T) {
	sender := NewUDPSender("not a host:port")

	err := sender.Send([]byte("payload"))
	assert.Error(t, err)
}
