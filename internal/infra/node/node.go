package node

import (
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Set at build time through -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

type Node struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

var (
	current     Node
	currentOnce sync.Once
)

// GetNodeInfo describes the running process. The identity is computed once
// and stays stable for the life of the process.
func GetNodeInfo() Node {
	currentOnce.Do(func() {
		current = Node{
			ID:         uuid.New().String(),
			Hostname:   hostname(),
			IPAddress:  outboundIP(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// outboundIP picks the address of the interface used for outgoing traffic.
// Dialing UDP sends no packet.
func outboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}
