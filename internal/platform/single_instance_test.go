package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName_Deterministic(t *testing.T) {
	first := portFromName("studydesk")
	assert.Equal(t, first, portFromName("studydesk"))
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
}

func TestAcquireSingleInstance_SecondFailsAndActivatesFirst(t *testing.T) {
	appName := fmt.Sprintf("studydesk-test-%d", time.Now().UnixNano())
	activated := make(chan struct{}, 1)

	guard, err := AcquireSingleInstance(appName, func() {
		activated <- struct{}{}
	})
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(appName, nil)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, ActivateRunning(appName))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestRelease_FreesLock(t *testing.T) {
	appName := fmt.Sprintf("studydesk-release-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName, nil)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName, nil)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
	assert.NoError(t, (*InstanceGuard)(nil).Release())
}
