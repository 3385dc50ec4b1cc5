package platform

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crashingChildEnv = "TIMECLOCK_GUARD_CHILD"

// TestMain lets the test binary act as an instance that takes the guard and
// dies without releasing it.
func TestMain(m *testing.M) {
	if appName := os.Getenv(crashingChildEnv); appName != "" {
		if _, err := AcquireSingleInstance(appName); err != nil {
			os.Exit(3)
		}
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestSingleInstance(t *testing.T) {
	appName := "Timeclock-test-" + t.Name()

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(appName)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestGuardFreedWhenOwnerDiesWithoutRelease(t *testing.T) {
	appName := "Timeclock-test-" + t.Name()

	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), crashingChildEnv+"="+appName)
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode(), "child could not take the guard")

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, guard.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}

func TestGuardAddressIsStable(t *testing.T) {
	address := guardAddress("Timeclock")
	assert.Equal(t, address, guardAddress("Timeclock"))
	assert.Regexp(t, `^127\.0\.0\.1:[23][0-9]{4}$`, address)
}
