package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"salesrace/internal/race"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRecorder_FollowsStore(t *testing.T) {
	rec := NewRecorder()
	s := race.NewStore(race.WithObserver(rec.Observe), race.WithRoster(race.Roster{{Name: "Ana"}}))
	rec.Set(s.Snapshot())

	s.Add()
	s.UpdateCompetitor(1, race.ValueEdit(1500))

	assert.Equal(t, 1000.0, testutil.ToFloat64(rec.target))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.competitors))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.winner))
	assert.Equal(t, 1500.0, testutil.ToFloat64(rec.value.WithLabelValues("1", "Ana")))
	assert.Equal(t, 150.0, testutil.ToFloat64(rec.progress.WithLabelValues("1", "Ana")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.mutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.mutations.WithLabelValues("update")))
}

func TestRecorder_DropsRemovedCompetitors(t *testing.T) {
	rec := NewRecorder()
	s := race.NewStore(race.WithObserver(rec.Observe), race.WithRoster(race.Roster{{Name: "Ana"}, {Name: "Bia"}}))
	s.Remove(1)

	assert.Equal(t, 1, testutil.CollectAndCount(rec.value))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.winner))
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	rec := NewRecorder()
	rec.Set(race.State{Target: 5000})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer(rec, nil).Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	client.CloseIdleConnections()

	assert.True(t, strings.Contains(string(body), "salesrace_target_value 5000"), string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServe_BadAddr(t *testing.T) {
	err := NewServer(NewRecorder(), nil).ListenAndServe(context.Background(), "not-an-addr")
	assert.Error(t, err)
}
