package connections

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// TimeoutConfig holds the various timeout settings for WebSocket connections
type TimeoutConfig struct {
	PongWait   time.Duration
	PingPeriod time.Duration
	WriteWait  time.Duration
}

// Info describes a live widget connection
type Info struct {
	RemoteAddr  string
	ConnectedAt time.Time
	Exchanges   int
}

// Manager tracks live widget WebSocket connections
type Manager struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*Info
	timeouts    TimeoutConfig
}

// DefaultTimeouts provides sensible default timeout values
var DefaultTimeouts = TimeoutConfig{
	PongWait:   60 * time.Second,
	PingPeriod: 54 * time.Second, // (PongWait * 9) / 10
	WriteWait:  10 * time.Second,
}

// NewManager creates a new connection manager with the specified timeouts
func NewManager(timeouts TimeoutConfig) *Manager {
	return &Manager{
		connections: make(map[*websocket.Conn]*Info),
		timeouts:    timeouts,
	}
}

// AddConnection registers a new WebSocket connection
func (m *Manager) AddConnection(conn *websocket.Conn, remoteAddr string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn] = &Info{RemoteAddr: remoteAddr, ConnectedAt: time.Now()}
}

// RemoveConnection removes a WebSocket connection
func (m *Manager) RemoveConnection(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.connections, conn)
}

// RecordExchange counts one completed chat exchange on conn
func (m *Manager) RecordExchange(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if info, ok := m.connections[conn]; ok {
		info.Exchanges++
	}
}

// GetInfo returns a copy of the connection's info
func (m *Manager) GetInfo(conn *websocket.Conn) (Info, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.connections[conn]
	if !ok {
		return Info{}, false
	}
	return *info, true
}

// GetConnectionCount returns the current number of active connections
func (m *Manager) GetConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// HasConnection checks if a specific connection exists
func (m *Manager) HasConnection(conn *websocket.Conn) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.connections[conn]
	return exists
}

// GetTimeouts returns the current timeout configuration
func (m *Manager) GetTimeouts() TimeoutConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timeouts
}

// SetTimeouts updates the timeout configuration
func (m *Manager) SetTimeouts(timeouts TimeoutConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeouts = timeouts
}
