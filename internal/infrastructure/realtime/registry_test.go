package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ConnectDisconnect(t *testing.T) {
	r := NewRegistry()

	online := r.Connect("7", "conn-a")
	assert.Equal(t, []string{"7"}, online)

	connID, ok := r.Lookup("7")
	assert.True(t, ok)
	assert.Equal(t, "conn-a", connID)

	userID, removed, online := r.Disconnect("conn-a")
	assert.Equal(t, "7", userID)
	assert.True(t, removed)
	assert.Empty(t, online)

	_, ok = r.Lookup("7")
	assert.False(t, ok)
}

func TestRegistry_ReconnectKeepsNewest(t *testing.T) {
	r := NewRegistry()

	r.Connect("7", "old")
	r.Connect("7", "new")

	userID, removed, online := r.Disconnect("old")
	assert.Equal(t, "7", userID)
	assert.False(t, removed)
	assert.Equal(t, []string{"7"}, online)

	connID, ok := r.Lookup("7")
	assert.True(t, ok)
	assert.Equal(t, "new", connID)
}

func TestRegistry_DisconnectUnknown(t *testing.T) {
	r := NewRegistry()
	r.Connect("1", "c1")

	userID, removed, online := r.Disconnect("nope")
	assert.Empty(t, userID)
	assert.False(t, removed)
	assert.Equal(t, []string{"1"}, online)
}

func TestRegistry_SnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Connect("3", "c3")
	r.Connect("1", "c1")
	r.Connect("2", "c2")

	assert.Equal(t, []string{"1", "2", "3"}, r.OnlineSnapshot())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i%5)
			conn := fmt.Sprintf("c%d", i)
			r.Connect(user, conn)
			r.Lookup(user)
			r.Disconnect(conn)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, r.OnlineSnapshot())
}
