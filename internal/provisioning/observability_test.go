package provisioning

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordedObserver() (*ConsoleObserver, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	return NewObserver(logger), hook
}

func TestObserver_EventCarriesStructuredFields(t *testing.T) {
	observer, hook := newRecordedObserver()

	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    "network",
		Resource: "demo-sg",
		Message:  "security group created",
		Fields:   map[string]string{"id": "sg-123"},
	})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "security group created", entry.Message)
	assert.Equal(t, "resource.created", entry.Data["event"])
	assert.Equal(t, "network", entry.Data["phase"])
	assert.Equal(t, "demo-sg", entry.Data["resource"])
	assert.Equal(t, "sg-123", entry.Data["id"])
}

func TestObserver_PhaseFailureLogsAtErrorLevel(t *testing.T) {
	observer, hook := newRecordedObserver()

	LogPhaseFailed(observer, "compute", errors.New("boom"))

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "boom")
}

func TestObserver_WithFieldsPropagates(t *testing.T) {
	observer, hook := newRecordedObserver()

	scoped := observer.WithFields(map[string]string{"deployment": "demo"})
	scoped.Event(Event{Type: EventPhaseStarted, Phase: "network", Message: "starting"})

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "demo", hook.LastEntry().Data["deployment"])

	// The parent observer is unchanged.
	hook.Reset()
	observer.Event(Event{Type: EventPhaseStarted, Phase: "network", Message: "starting"})
	require.Len(t, hook.Entries, 1)
	assert.NotContains(t, hook.LastEntry().Data, "deployment")
}

func TestObserver_ResourceHelpers(t *testing.T) {
	observer, hook := newRecordedObserver()

	LogResourceExists(observer, "address", "elastic IP", "demo-eip", "eipalloc-1")
	LogResourceDeleting(observer, "destroy", "instance", "demo-server")
	LogResourceDeleted(observer, "destroy", "instance", "demo-server")

	require.Len(t, hook.Entries, 3)
	assert.Equal(t, "resource.exists", hook.Entries[0].Data["event"])
	assert.Equal(t, "resource.deleting", hook.Entries[1].Data["event"])
	assert.Equal(t, "resource.deleted", hook.Entries[2].Data["event"])
}
