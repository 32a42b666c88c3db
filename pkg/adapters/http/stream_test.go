package http_test

import (
	"testing"

	"github.com/aretw0/quest/internal/logging"
	questhttp "github.com/aretw0/quest/pkg/adapters/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamManager_Routing(t *testing.T) {
	sm := questhttp.NewStreamManager(logging.NewNop())

	cave, leaveCave := sm.Subscribe("cueva")
	all, leaveAll := sm.Subscribe("")
	defer leaveAll()

	sm.Broadcast("cueva", "cueva")
	sm.Broadcast("bosque", "bosque")

	assert.Equal(t, "cueva", <-cave)
	assert.Equal(t, "cueva", <-all)
	assert.Equal(t, "bosque", <-all)
	assert.Empty(t, cave)

	leaveCave()
	_, open := <-cave
	require.False(t, open, "unsubscribe closes the channel")

	// A second unsubscribe is a no-op.
	leaveCave()
	sm.Broadcast("cueva", "again")
	assert.Equal(t, "again", <-all)
}

func TestStreamManager_DropsWhenFull(t *testing.T) {
	sm := questhttp.NewStreamManager(logging.NewNop())
	ch, leave := sm.Subscribe("cueva")
	defer leave()

	for i := 0; i < 20; i++ {
		sm.Broadcast("cueva", "tick")
	}
	assert.Len(t, ch, 10)
}
