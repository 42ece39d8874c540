package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/middleware"
)

func startFeed(t *testing.T, studentID uuid.UUID) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		c.Set(middleware.ContextKeyPrincipalID, studentID)
		c.Set(middleware.ContextKeyRoleType, models.RoleStudent)
		c.Next()
	}, NewHandler(hub, zerolog.Nop()).HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *gorillaws.Conn {
	t.Helper()
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestNotifyAssignedReachesStudent(t *testing.T) {
	studentID := uuid.New()
	hub, url := startFeed(t, studentID)
	conn := dial(t, url)

	require.Eventually(t, func() bool { return hub.ClientsCount(studentID) == 1 }, time.Second, 10*time.Millisecond)

	task := models.Task{ID: uuid.New(), Title: "Read chapter 3", DueDate: "2025-03-01"}
	hub.NotifyAssigned(context.Background(), task, []models.StudentTask{
		{StudentID: uuid.New(), TaskID: task.ID},
		{StudentID: studentID, TaskID: task.ID},
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventTaskAssigned, event.Type)
	assert.Equal(t, studentID, event.StudentID)
	assert.Equal(t, task.ID, event.TaskID)
	assert.Equal(t, "Read chapter 3", event.Title)
	assert.Equal(t, "2025-03-01", event.DueDate)
}

func TestClientUnregistersOnClose(t *testing.T) {
	studentID := uuid.New()
	hub, url := startFeed(t, studentID)
	conn := dial(t, url)

	require.Eventually(t, func() bool { return hub.ClientsCount(studentID) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientsCount(studentID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishReturnsAfterHubStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	done := make(chan struct{})
	go func() {
		hub.Publish(context.Background(), &Event{Type: EventTaskAssigned, StudentID: uuid.New()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a stopped hub")
	}
}
