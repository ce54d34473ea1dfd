package connections

import (
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestManager(t *testing.T) {
	t.Run("basic add and remove connection", func(t *testing.T) {
		manager := NewManager(DefaultTimeouts)
		conn := &websocket.Conn{}

		manager.AddConnection(conn, "127.0.0.1:5000")
		if !manager.HasConnection(conn) {
			t.Error("Connection not found after adding")
		}

		info, ok := manager.GetInfo(conn)
		if !ok || info.RemoteAddr != "127.0.0.1:5000" {
			t.Errorf("Unexpected info %+v (found %v)", info, ok)
		}

		manager.RemoveConnection(conn)
		if manager.HasConnection(conn) {
			t.Error("Connection still exists after removal")
		}
	})

	t.Run("exchange counting", func(t *testing.T) {
		manager := NewManager(DefaultTimeouts)
		conn := &websocket.Conn{}
		manager.AddConnection(conn, "")

		manager.RecordExchange(conn)
		manager.RecordExchange(conn)
		manager.RecordExchange(&websocket.Conn{}) // unknown connections are ignored

		info, _ := manager.GetInfo(conn)
		if info.Exchanges != 2 {
			t.Errorf("Expected 2 exchanges, got %d", info.Exchanges)
		}
	})

	t.Run("concurrent connection operations", func(t *testing.T) {
		manager := NewManager(DefaultTimeouts)
		concurrentOps := 100
		var wg sync.WaitGroup
		wg.Add(concurrentOps)

		connections := make([]*websocket.Conn, concurrentOps)
		for i := range connections {
			connections[i] = &websocket.Conn{}
		}

		for _, conn := range connections {
			go func(conn *websocket.Conn) {
				defer wg.Done()
				manager.AddConnection(conn, "")
				manager.RecordExchange(conn)
			}(conn)
		}
		wg.Wait()

		if got := manager.GetConnectionCount(); got != concurrentOps {
			t.Errorf("Expected %d connections, got %d", concurrentOps, got)
		}

		for _, conn := range connections {
			manager.RemoveConnection(conn)
		}
		if got := manager.GetConnectionCount(); got != 0 {
			t.Errorf("Expected 0 connections after cleanup, got %d", got)
		}
	})

	t.Run("timeout configuration", func(t *testing.T) {
		customTimeouts := TimeoutConfig{
			PongWait:   1 * time.Minute,
			PingPeriod: 54 * time.Second,
			WriteWait:  20 * time.Second,
		}

		manager := NewManager(customTimeouts)
		if manager.GetTimeouts() != customTimeouts {
			t.Error("Timeout configuration not set correctly")
		}

		newTimeouts := TimeoutConfig{
			PongWait:   2 * time.Minute,
			PingPeriod: 108 * time.Second,
			WriteWait:  30 * time.Second,
		}
		manager.SetTimeouts(newTimeouts)

		if manager.GetTimeouts() != newTimeouts {
			t.Error("Timeout configuration not updated correctly")
		}
	})
}
